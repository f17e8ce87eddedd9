package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued   JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning  JobStatus = "RUNNING"  // in progress
	JobStatusTextOK   JobStatus = "TEXT_OK"  // stage 1 completed (document text extracted)
	JobStatusParsed   JobStatus = "PARSED"   // stage 2 completed (fields extracted and validated)
	JobStatusRejected JobStatus = "REJECTED" // validation rejected the extracted fields
	JobStatusFailed   JobStatus = "FAILED"   // terminal failure
)

// JobStatuses holds the allowed values for the extract_job status column.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusTextOK),
	string(JobStatusParsed),
	string(JobStatusRejected),
	string(JobStatusFailed),
}
