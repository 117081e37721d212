package importer

import "fmt"

// MissingColumnError reports an export that lacks a column its institution's
// layout requires, usually because the file came from a different bank.
type MissingColumnError struct {
	Institution string
	Column      string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column %q", e.Institution, e.Column)
}

// UnsupportedInstitutionError reports a bank name with no adapter.
type UnsupportedInstitutionError struct {
	Name string
}

func (e *UnsupportedInstitutionError) Error() string {
	return fmt.Sprintf("unsupported institution %q", e.Name)
}

// MalformedRowError reports a cell that cannot be coerced to its field type.
// Row is the 1-based data row, header excluded.
type MalformedRowError struct {
	Institution string
	Row         int
	Column      string
	Value       string
	Err         error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s: row %d: column %q: cannot parse %q: %v", e.Institution, e.Row, e.Column, e.Value, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// FileError attaches the source file and institution to a failure that
// aborted an import batch.
type FileError struct {
	File        string
	Institution string
	Err         error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("importing %s as %s: %v", e.File, e.Institution, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
