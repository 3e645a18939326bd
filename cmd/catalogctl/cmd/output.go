package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printBrandsTable(w io.Writer, brands []domain.Brand) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tACTIVE\tIMAGE\n")
	for i := range brands {
		tw.writef("%s\t%s\t%v\t%s\n",
			brands[i].ID,
			brands[i].Name,
			brands[i].Active,
			orDash(brands[i].Image),
		)
	}
	return tw.finish()
}

func printCategoriesTable(w io.Writer, cats []domain.Category) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tACTIVE\tOFFER\tEXPIRY\n")
	for i := range cats {
		offer, expiry := "-", "-"
		if p := cats[i].Promotion; p != nil {
			offer = fmt.Sprintf("%g%%", p.Offer)
			expiry = orDash(p.Expiry)
		}
		tw.writef("%s\t%s\t%v\t%s\t%s\n",
			cats[i].ID,
			cats[i].Name,
			cats[i].Active,
			offer,
			expiry,
		)
	}
	return tw.finish()
}

func printProductsTable(w io.Writer, products []domain.ProductSummary) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tBRAND\tCATEGORY\tPRICE\tSALE\tSIZES\n")
	for i := range products {
		p := &products[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			p.ID,
			truncate(p.Name, 40),
			p.Brand,
			p.Category,
			p.RegularPrice,
			p.SalePrice,
			strings.Join(p.Sizes, ","),
		)
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, d *domain.ProductDetail) error {
	p := &d.Product
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Brand:\t%s\n", p.Brand)
	tw.writef("Category:\t%s\n", p.Category)
	tw.writef("Gender:\t%s\n", p.Gender)
	tw.writef("Price:\t%d (sale %d, offer %d)\n", p.RegularPrice, p.SalePrice, p.OfferPrice)
	tw.writef("Colors:\t%s\n", orDash(strings.Join(p.Colors, ", ")))
	for _, s := range p.Sizes {
		tw.writef("Size %s:\t%d in stock\n", s.Size, s.Stock)
	}
	tw.writef("Active:\t%v\n", p.Active)
	tw.writef("Reviews:\t%d\n", len(p.Reviews))
	tw.writef("Related:\t%d\n", len(d.Related))
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tFINISHED\tAFFECTED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.FinishedAt.Format("2006-01-02 15:04:05"),
			r.Affected,
			truncate(r.Error, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
