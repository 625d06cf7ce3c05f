// Package search builds LinkedIn job-search URLs from a role name and filter
// labels. Labels map to LinkedIn's own filter codes; an unknown label is
// rejected before any request is made.
package search

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

const BaseURL = "https://www.linkedin.com/jobs/search"

var ErrUnknownLabel = errors.New("unknown filter label")

var jobTypeCodes = map[string]string{
	"full_time": "F",
	"part_time": "P",
}

var pastTimeCodes = map[string]string{
	"second": "r60",
	"day":    "r86400",
	"week":   "r604800",
	"month":  "r2592000",
}

var jobLevelCodes = map[string]int{
	"internship":       1,
	"entry_level":      2,
	"associate":        3,
	"mid_senior_level": 4,
	"director":         5,
}

// Filters holds the human labels taken from configuration.
type Filters struct {
	Location string
	JobType  string
	PastTime string
	JobLevel string
}

// DefaultFilters mirrors the search the connector has always run.
func DefaultFilters() Filters {
	return Filters{
		Location: "India",
		JobType:  "full_time",
		PastTime: "day",
		JobLevel: "entry_level",
	}
}

// Query is a resolved search. It is built once per role and never mutated.
type Query struct {
	role     string
	location string
	jobType  string
	pastTime string
	jobLevel int
}

func NewQuery(role string, f Filters) (Query, error) {
	jt, err := JobTypeCode(f.JobType)
	if err != nil {
		return Query{}, err
	}
	pt, err := PastTimeCode(f.PastTime)
	if err != nil {
		return Query{}, err
	}
	jl, err := JobLevelCode(f.JobLevel)
	if err != nil {
		return Query{}, err
	}
	return Query{
		role:     role,
		location: f.Location,
		jobType:  jt,
		pastTime: pt,
		jobLevel: jl,
	}, nil
}

func JobTypeCode(label string) (string, error) {
	code, ok := jobTypeCodes[label]
	if !ok {
		return "", fmt.Errorf("job type %q: %w", label, ErrUnknownLabel)
	}
	return code, nil
}

func PastTimeCode(label string) (string, error) {
	code, ok := pastTimeCodes[label]
	if !ok {
		return "", fmt.Errorf("past time %q: %w", label, ErrUnknownLabel)
	}
	return code, nil
}

func JobLevelCode(label string) (int, error) {
	code, ok := jobLevelCodes[label]
	if !ok {
		return 0, fmt.Errorf("job level %q: %w", label, ErrUnknownLabel)
	}
	return code, nil
}

// Validate checks every label without building a query.
func (f Filters) Validate() error {
	_, err := NewQuery("", f)
	return err
}

func (q Query) Role() string { return q.role }

// URL renders the listing page address for the query.
func (q Query) URL() string {
	v := url.Values{}
	v.Set("keywords", q.role)
	v.Set("location", q.location)
	v.Set("f_JT", q.jobType)
	v.Set("f_TPR", q.pastTime)
	v.Set("f_E", strconv.Itoa(q.jobLevel))
	return BaseURL + "?" + v.Encode()
}
