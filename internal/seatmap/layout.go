package seatmap

import "fmt"

// Column groups per cabin shape. Groups render with an aisle between them.
var (
	columnsOneTwoOneBusiness = [][]string{{"A"}, {"D", "E"}, {"K"}}
	columnsWideBusiness      = [][]string{{"A", "C", "D"}, {"H", "J", "K"}}
	columnsStandard          = [][]string{{"A", "B", "C"}, {"D", "E", "F"}}
)

// Layout is the synthesized seat grid for one cabin class: a contiguous,
// globally unique row range plus the column letter groups.
type Layout struct {
	Class        CabinClass
	StartRow     int
	EndRow       int
	ColumnGroups [][]string
}

// SeatsPerRow returns the row width for a class under a convention.
// Business under the 1-2-1 convention seats four abreast; every other
// configuration seats six.
func SeatsPerRow(class CabinClass, conv Convention) int {
	if class == Business && conv == OneTwoOne {
		return 4
	}
	return 6
}

// RowsFor returns how many rows a class occupies: ceil(seats / perRow).
func RowsFor(seats, perRow int) int {
	if seats <= 0 {
		return 0
	}
	return (seats + perRow - 1) / perRow
}

func columnGroups(class CabinClass, conv Convention) [][]string {
	if class != Business {
		return columnsStandard
	}
	if conv == OneTwoOne {
		return columnsOneTwoOneBusiness
	}
	return columnsWideBusiness
}

// Generate synthesizes the layout for one cabin class. rowsBefore is the
// total row count consumed by classes that render ahead of this one,
// computed with the same per-class row rule (see Plan).
func Generate(class CabinClass, conv Convention, seatsInClass, rowsBefore int) Layout {
	perRow := SeatsPerRow(class, conv)
	rows := RowsFor(seatsInClass, perRow)
	start := rowsBefore + 1
	return Layout{
		Class:        class,
		StartRow:     start,
		EndRow:       start + rows - 1,
		ColumnGroups: columnGroups(class, conv),
	}
}

// ClassInventory pairs a cabin class with its seat count.
type ClassInventory struct {
	Class CabinClass
	Seats int
}

// Plan lays out every class of a flight front to back in cabin order
// (Business, Premium Economy, Economy), stacking row ranges so no two
// classes share a row. Classes with zero seats produce no layout.
func Plan(conv Convention, classes []ClassInventory) []Layout {
	ordered := make([]ClassInventory, 0, len(classes))
	for _, want := range []CabinClass{Business, PremiumEconomy, Economy} {
		for _, ci := range classes {
			if ci.Class == want {
				ordered = append(ordered, ci)
			}
		}
	}

	layouts := make([]Layout, 0, len(ordered))
	consumed := 0
	for _, ci := range ordered {
		if ci.Seats <= 0 {
			continue
		}
		l := Generate(ci.Class, conv, ci.Seats, consumed)
		layouts = append(layouts, l)
		consumed += l.EndRow - l.StartRow + 1
	}
	return layouts
}

// Rows returns the ordered row numbers of the layout.
func (l Layout) Rows() []int {
	if l.EndRow < l.StartRow {
		return nil
	}
	rows := make([]int, 0, l.EndRow-l.StartRow+1)
	for r := l.StartRow; r <= l.EndRow; r++ {
		rows = append(rows, r)
	}
	return rows
}

// Columns returns the column letters flattened across groups.
func (l Layout) Columns() []string {
	var cols []string
	for _, g := range l.ColumnGroups {
		cols = append(cols, g...)
	}
	return cols
}

// SeatCodes returns every seat code of the layout in row-major order.
func (l Layout) SeatCodes() []string {
	cols := l.Columns()
	codes := make([]string, 0, len(cols)*(l.EndRow-l.StartRow+1))
	for r := l.StartRow; r <= l.EndRow; r++ {
		for _, c := range cols {
			codes = append(codes, SeatCode(r, c))
		}
	}
	return codes
}

// Contains reports whether the seat code belongs to this layout.
func (l Layout) Contains(code string) bool {
	row, letter, err := ParseSeatCode(code)
	if err != nil {
		return false
	}
	if row < l.StartRow || row > l.EndRow {
		return false
	}
	for _, c := range l.Columns() {
		if c == letter {
			return true
		}
	}
	return false
}

// SeatCode builds the canonical seat code for a row and column letter.
func SeatCode(row int, letter string) string {
	return fmt.Sprintf("%d%s", row, letter)
}
