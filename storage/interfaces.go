package storage

import "f1-highlights-analytics/models"

// RecordWriter is the interface any table sink must satisfy.
type RecordWriter interface {
	Write(records []*models.VideoRecord) error
	Close() error
}
