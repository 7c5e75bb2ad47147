package leaftable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DefaultRowWidth is the number of values per output line.
const DefaultRowWidth = 25

// ErrInvalidRowWidth is returned for a row width below one.
var ErrInvalidRowWidth = errors.New("row width must be positive")

// RenderOptions controls the text layout.
type RenderOptions struct {
	// RowWidth is the number of values per line. Zero means DefaultRowWidth.
	RowWidth int
}

func (o RenderOptions) rowWidth() (int, error) {
	switch {
	case o.RowWidth == 0:
		return DefaultRowWidth, nil
	case o.RowWidth < 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidRowWidth, o.RowWidth)
	default:
		return o.RowWidth, nil
	}
}

// Render writes the table as comma separated 0/1 values. Every value is
// followed by a comma; a newline follows every RowWidth-th value and the last
// one, a single space follows all others:
//
//	1, 1, 0, 0, 1,
func Render(w io.Writer, table *Table, opts RenderOptions) error {
	width, err := opts.rowWidth()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	writeBody(bw, table.values, width, "")

	err = bw.Flush()
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// RenderCArray writes the table as a C array definition named name, with the
// rendered rows indented by one tab.
func RenderCArray(w io.Writer, table *Table, name string, opts RenderOptions) error {
	width, err := opts.rowWidth()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "static const uint8_t %s[%d] = {\n", name, len(table.values))
	writeBody(bw, table.values, width, "\t")
	bw.WriteString("};\n")

	err = bw.Flush()
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

func writeBody(bw *bufio.Writer, values []Class, width int, indent string) {
	last := len(values) - 1

	for idx, value := range values {
		if idx == 0 || endsRow(idx-1, width) {
			bw.WriteString(indent)
		}

		bw.WriteString(strconv.Itoa(int(value)))
		bw.WriteByte(',')

		if endsRow(idx, width) || idx == last {
			bw.WriteByte('\n')
		} else {
			bw.WriteByte(' ')
		}
	}
}

// endsRow reports whether a line break follows position idx (zero based).
func endsRow(idx, width int) bool {
	return idx != 0 && (idx+1)%width == 0
}
