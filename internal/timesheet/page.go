package timesheet

// Page identifies the logical page the session last loaded. The backend
// keeps "current page" context in its server-side session, so the client
// mirrors it with this explicit state instead of re-deriving it from
// responses.
type Page string

const (
	PageNone     Page = ""
	PageLogin    Page = "LOGIN"
	PageBase     Page = "BASE"
	PageDateLoad Page = "DATE_LOAD"
	PageSubmit   Page = "SUBMIT"
)
