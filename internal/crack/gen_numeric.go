package crack

import "fmt"

// Digits enumerates every zero-padded decimal string of a fixed width,
// ascending: width 4 yields "0000".."9999".
type Digits struct {
	width int
	next  uint64
	limit uint64
}

// NewDigits returns the fixed-width numeric generator. A non-positive
// width yields an empty sequence.
func NewDigits(width int) *Digits {
	d := &Digits{width: width}
	if width > 0 {
		d.limit, _ = Pow(10, uint64(width))
	}
	return d
}

func (d *Digits) Name() string { return fmt.Sprintf("digits-%d", d.width) }

func (d *Digits) Size() uint64 { return d.limit }

func (d *Digits) Next() (string, bool) {
	if d.next >= d.limit {
		return "", false
	}
	s := fmt.Sprintf("%0*d", d.width, d.next)
	d.next++
	return s, true
}

// Dates enumerates date-like YYYYMMDD strings for an inclusive year
// range. Months run 01-12 and days 01-31 without calendar validation;
// impossible dates like 20210231 are still worth a hash since people
// type digits, not calendars.
type Dates struct {
	fromYear, toYear int
	year, month, day int
	done             bool
}

// NewDates returns the date-pattern generator. An inverted range yields
// an empty sequence.
func NewDates(fromYear, toYear int) *Dates {
	return &Dates{
		fromYear: fromYear,
		toYear:   toYear,
		year:     fromYear,
		month:    1,
		day:      1,
		done:     fromYear > toYear,
	}
}

func (d *Dates) Name() string { return fmt.Sprintf("dates-%d-%d", d.fromYear, d.toYear) }

func (d *Dates) Size() uint64 {
	if d.fromYear > d.toYear {
		return 0
	}
	return uint64(d.toYear-d.fromYear+1) * 12 * 31
}

func (d *Dates) Next() (string, bool) {
	if d.done {
		return "", false
	}

	s := fmt.Sprintf("%04d%02d%02d", d.year, d.month, d.day)

	d.day++
	if d.day > 31 {
		d.day = 1
		d.month++
	}
	if d.month > 12 {
		d.month = 1
		d.year++
	}
	if d.year > d.toYear {
		d.done = true
	}
	return s, true
}
