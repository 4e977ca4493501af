package consts

const (
	RuneFwdSlash = '/'
	RuneColon    = ':'
	RuneAsterisk = '*'
	RuneQuestion = '?'
)

const (
	RootRoute = "/"
	Wildcard  = "*"

	// WildcardKey is the parameter key under which wildcard captures are reported.
	WildcardKey = "_"

	QueryPrefix = "?"
)

// Action types dispatched to the state container
const (
	ActionPush    = "ROUTER_PUSH"
	ActionReplace = "ROUTER_REPLACE"
)

// Mouse buttons as reported by click events
const (
	ButtonPrimary   = 0
	ButtonAuxiliary = 1
	ButtonSecondary = 2
)
