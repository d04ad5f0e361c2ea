package preferences

// ResultCode is reported back to the host when the screen asks it to act
type ResultCode int

// ResultOK asks the host to act on the reported payload
const ResultOK ResultCode = -1

// Navigator opens secondary settings screens on the host's back stack
type Navigator interface {
	OpenSubscreen(id string)
}

// ResultReporter hands a result code and payload to the hosting window
type ResultReporter interface {
	ReportResult(code ResultCode, payload string)
}

// SharedPreferences is the application-wide boolean preference store
type SharedPreferences interface {
	Bool(key Key, def bool) (bool, error)
	SetBool(key Key, value bool) error
}

// RestrictionHandler lets device policy lock a control. Passing nil
// releases the previously registered control.
type RestrictionHandler interface {
	RegisterControl(c *Control)
}
