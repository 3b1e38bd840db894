package overtime

import "errors"

var (
	ErrRequestNotFound  = errors.New("overtime request not found or already processed")
	ErrDuplicatePending = errors.New("a pending overtime request already exists for this date")
	ErrWrongApprover    = errors.New("you are not the requested approver for this request")
)
