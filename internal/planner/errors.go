package planner

import "errors"

var (
	ErrEmptyLedger  = errors.New("ledger has no records for this session")
	ErrTaskNotFound = errors.New("task not found")
)
