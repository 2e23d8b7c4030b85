package report

import (
	"fmt"
	"io"

	"github.com/Adda-Baaj/swapi-client/internal/domain"
)

// Banner is the first line the program prints.
const Banner = "Star Wars API Client"

// Reporter writes character sections as plain text.
// It is not safe for concurrent use.
type Reporter struct {
	out      io.Writer
	sections int
}

// New returns a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Banner writes the program banner.
func (r *Reporter) Banner() {
	fmt.Fprintln(r.out, Banner)
}

// Report writes a header naming label followed by one labelled line per field.
// Sections after the first are separated by a blank line.
func (r *Reporter) Report(label string, c domain.Character) {
	if r.sections > 0 {
		fmt.Fprintln(r.out)
	}
	r.sections++

	fmt.Fprintf(r.out, "Getting %s's information...\n", label)
	fmt.Fprintf(r.out, "Name: %s\n", c.Name)
	fmt.Fprintf(r.out, "Height: %s cm\n", c.Height)
	fmt.Fprintf(r.out, "Mass: %s kg\n", c.Mass)
	fmt.Fprintf(r.out, "Hair color: %s\n", c.HairColor)
	fmt.Fprintf(r.out, "Eye color: %s\n", c.EyeColor)
}

// Error writes a failure description for label to w.
func Error(w io.Writer, label string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", label, err)
}
