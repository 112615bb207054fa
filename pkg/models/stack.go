package models

// StackResponseSuccess is the GraphQL union variant returned when a stack
// read or mutation succeeded.
const StackResponseSuccess = "StackResponseSuccess"

// GraphQLRequest is the envelope posted to the GraphQL gateway.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// StackEnvelope is the decoded GraphQL response body. Only one of the data
// fields is set, matching the operation that was posted.
type StackEnvelope struct {
	Data struct {
		ViewUserStack   *StackResult `json:"viewUserStack"`
		ModifyStack     *StackResult `json:"modifyStack"`
		AddClassToStack *StackResult `json:"addClassToStack"`
	} `json:"data"`
}

// StackResult is the typed union carried by every stack operation.
type StackResult struct {
	Typename   string `json:"__typename"`
	NumClasses int    `json:"numClasses"`
	TotalTime  int    `json:"totalTime"`
	UserStack  struct {
		StackedClassList []StackedClass `json:"stackedClassList"`
	} `json:"userStack"`
}

// StackedClass is one queued class, ordered by play order.
type StackedClass struct {
	PlayOrder    int          `json:"playOrder"`
	PelotonClass PelotonClass `json:"pelotonClass"`
}

// PelotonClass is the class metadata inside a stack entry.
type PelotonClass struct {
	JoinToken         string `json:"joinToken"`
	Title             string `json:"title"`
	ClassID           string `json:"classId"`
	Duration          int    `json:"duration"`
	AirTime           int64  `json:"airTime"`
	ContentFormat     string `json:"contentFormat"`
	FitnessDiscipline struct {
		Slug        string `json:"slug"`
		DisplayName string `json:"displayName"`
	} `json:"fitnessDiscipline"`
	DifficultyLevel struct {
		Slug        string `json:"slug"`
		DisplayName string `json:"displayName"`
	} `json:"difficultyLevel"`
	Instructor struct {
		Name string `json:"name"`
	} `json:"instructor"`
}
