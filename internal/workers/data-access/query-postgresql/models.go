// internal/workers/data-access/query-postgresql/models.go
package querypostgresql

import "alumni-connect-workers/internal/models"

type Input struct {
	QueryType  string                 `json:"queryType"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}

type Output struct {
	Data               interface{} `json:"data"`
	RowCount           int         `json:"rowCount"`
	QueryExecutionTime int64       `json:"queryExecutionTime"` // milliseconds
}

type QueryType = models.QueryType
