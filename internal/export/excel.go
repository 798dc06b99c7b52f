// Package export materializes the current application set into a spreadsheet
// for download by reviewers.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
)

const (
	// Filename is the fixed download name of the export artifact.
	Filename = "nova_applications.xlsx"
	// SheetName holds all exported rows; there is exactly one sheet.
	SheetName = "Applications"

	// submittedAtLayout renders the submission timestamp the way reviewers
	// see dates elsewhere in the admin surface.
	submittedAtLayout = "1/2/2006, 3:04:05 PM"
)

// Header is the fixed column order. Every Application field from the data
// model appears exactly once; array fields are flattened with a fixed ", "
// delimiter.
var Header = []string{
	"Full Name",
	"Email",
	"Roll Number",
	"Phone",
	"Year",
	"Department",
	"Primary Choice",
	"Primary Domains",
	"Primary Skills",
	"Primary Reason",
	"Secondary Choice",
	"Secondary Domains",
	"Secondary Skills",
	"Secondary Reason",
	"Status",
	"Rating",
	"Submitted At",
}

// Row flattens one application into its 17 export columns.
func Row(app admindomain.Application) []any {
	submittedAt := ""
	if !app.SubmittedAt.IsZero() {
		submittedAt = app.SubmittedAt.Format(submittedAtLayout)
	}
	return []any{
		app.FullName,
		app.Email.String(),
		app.RollNumber,
		app.Phone,
		app.Year,
		app.Department,
		app.PrimaryDept.String(),
		app.Domains.Joined(),
		app.Skills,
		app.Reason,
		app.SecondaryDept.String(),
		app.SecondaryDomains.Joined(),
		app.SecondarySkills,
		app.SecondaryReason,
		app.Status.String(),
		app.Rating.Int(),
		submittedAt,
	}
}

// Workbook builds the export spreadsheet: a header row plus one row per
// application, in the order given. Pure function of its input.
func Workbook(apps []admindomain.Application) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName(file.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, column := range Header {
		header[i] = column
	}
	if err := file.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, app := range apps {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		row := Row(app)
		if err := file.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	return file, nil
}

// Write renders the workbook to w, typically an HTTP response.
func Write(w io.Writer, apps []admindomain.Application) error {
	file, err := Workbook(apps)
	if err != nil {
		return err
	}
	defer file.Close()
	return file.Write(w)
}
