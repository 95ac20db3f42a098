package types

import "errors"

var (
	ErrMissingOwnerRegexp = errors.New("user_owner_regexp is required in the configuration")
	ErrNegativeThreshold  = errors.New("report_threshold must not be negative")
	ErrNoBillingArchive   = errors.New("no billing archive found in the source bucket")
)
