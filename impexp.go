package subshare

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// this file contains functions to handle the export format.
// It should remain a plain spreadsheet exchange format, one file per year.

// ExportCSV writes the year's payment grid to 'w' in the export format.
//
// The format is one header row `Member,Jan..Dec,Months Paid,Amount Paid,
// Amount Owed`, then one row per member in display order, with "Yes"/"No"
// per month and amounts formatted with the currency symbol and two decimals.
func ExportCSV(w io.Writer, rec *YearRecord) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 16)
	header = append(header, "Member")
	for _, month := range Months {
		header = append(header, month.String())
	}
	header = append(header, "Months Paid", "Amount Paid", "Amount Owed")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}

	pricePerSlot := rec.PricePerSlot()
	for _, member := range rec.Members {
		row := make([]string, 0, 16)
		row = append(row, member)

		monthsPaid := 0
		for _, month := range Months {
			if rec.Paid(member, month) {
				row = append(row, "Yes")
				monthsPaid++
			} else {
				row = append(row, "No")
			}
		}

		row = append(row,
			strconv.Itoa(monthsPaid),
			pricePerSlot.MulInt(monthsPaid).String(),
			pricePerSlot.MulInt(12-monthsPaid).String(),
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write export row for %q: %w", member, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
