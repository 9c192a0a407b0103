package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// JobStatus represents where a job is in the processing pipeline
type JobStatus string

const (
	JobStatusInitializing JobStatus = "initializing"
	JobStatusDownloading  JobStatus = "downloading"
	JobStatusExtracting   JobStatus = "extracting"
	JobStatusTranscribing JobStatus = "transcribing"
	JobStatusSummarizing  JobStatus = "summarizing"
	JobStatusCompleted    JobStatus = "completed"
	JobStatusFailed       JobStatus = "failed"
)

// Progress milestones reached as the pipeline advances through its stages
const (
	ProgressDownloaded  = 0.2
	ProgressExtracted   = 0.4
	ProgressTranscribed = 0.6
	ProgressSummarized  = 0.7
	ProgressQuizDone    = 0.8
	ProgressSentiment   = 0.9
	ProgressCompleted   = 1.0
)

// Job represents one end-to-end media summarization request
type Job struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Status    JobStatus  `json:"status" gorm:"index"`
	Progress  float64    `json:"progress"`
	Options   JobOptions `json:"options,omitempty" gorm:"type:json"`
	Result    *Result    `json:"result,omitempty" gorm:"type:json"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsTerminal returns true once the job can no longer change
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// Clone returns a deep copy safe to hand to concurrent readers
func (j *Job) Clone() *Job {
	copied := *j
	if j.Options != nil {
		copied.Options = make(JobOptions, len(j.Options))
		for k, v := range j.Options {
			copied.Options[k] = v
		}
	}
	if j.Result != nil {
		result := *j.Result
		copied.Result = &result
	}
	return &copied
}

// TableName specifies the table name for GORM
func (Job) TableName() string {
	return "jobs"
}

// JobOptions represents the submission options for a job
type JobOptions map[string]interface{}

// Value implements driver.Valuer interface for JobOptions
func (o JobOptions) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

// Scan implements sql.Scanner interface for JobOptions
func (o *JobOptions) Scan(value interface{}) error {
	if value == nil {
		*o = make(JobOptions)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, o)
}
