package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCollectionEmpty    = errors.New("no documents found in collection")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidPeriod      = errors.New("invalid reporting period")
	ErrInvalidDocumentID  = errors.New("invalid document id")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrEmptyExport        = errors.New("export data must be a non-empty array")
)
