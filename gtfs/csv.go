package gtfs

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// CSVInt is an int that tolerates empty CSV fields.
type CSVInt int

// MarshalCSV marshals the value into its string form.
func (i *CSVInt) MarshalCSV() (string, error) {
	return strconv.Itoa(int(*i)), nil
}

// UnmarshalCSV converts the CSV field to an int; an empty field is zero.
func (i *CSVInt) UnmarshalCSV(field string) error {
	field = strings.TrimSpace(field)
	if field == "" {
		*i = 0
		return nil
	}
	val, err := strconv.Atoi(field)
	if err != nil {
		return err
	}
	*i = CSVInt(val)
	return nil
}

// CSVBool is a GTFS "0"/"1" flag that tolerates empty CSV fields.
type CSVBool bool

// MarshalCSV marshals the value into "0" or "1".
func (b *CSVBool) MarshalCSV() (string, error) {
	if *b {
		return "1", nil
	}
	return "0", nil
}

// UnmarshalCSV converts the CSV field to a bool; anything but "1" is false.
func (b *CSVBool) UnmarshalCSV(field string) error {
	*b = strings.TrimSpace(field) == "1"
	return nil
}

// GTFS tables carry optional trailing columns, so rows may legitimately be
// shorter than the header row.
func lenientCSVReader(in io.Reader) gocsv.CSVReader {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}
