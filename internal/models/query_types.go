// internal/models/query_types.go
package models

type QueryType string

const (
	QueryTypeProfile          QueryType = "profile"
	QueryTypeCandidatePool    QueryType = "candidate_pool"
	QueryTypeConnectionIDs    QueryType = "connection_ids"
	QueryTypeActivityCounters QueryType = "activity_counters"
	QueryTypePopulation       QueryType = "population"
	QueryTypeApprovedJobs     QueryType = "approved_jobs"
	QueryTypeUpcomingEvents   QueryType = "upcoming_events"
)
