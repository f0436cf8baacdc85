package api

// Services bundles every resource binding over one shared client.
type Services struct {
	Foods                *Foods
	FoodCategories       *FoodCategories
	Subscriptions        *Subscriptions
	Tags                 *Tags
	UserPayments         *UserPayments
	TrainerApplications  *TrainerApplications
	TrainerRatings       *TrainerRatings
	ReportReasons        *ReportReasons
	PostReports          *PostReports
	UserWaterLogs        *UserWaterLogs
	Profiles             *Profiles
	TrialRecommendations *TrialRecommendations
	ChatSupport          *ChatSupport
}

func NewServices(c *Client) *Services {
	return &Services{
		Foods:                NewFoods(c),
		FoodCategories:       NewFoodCategories(c),
		Subscriptions:        NewSubscriptions(c),
		Tags:                 NewTags(c),
		UserPayments:         NewUserPayments(c),
		TrainerApplications:  NewTrainerApplications(c),
		TrainerRatings:       NewTrainerRatings(c),
		ReportReasons:        NewReportReasons(c),
		PostReports:          NewPostReports(c),
		UserWaterLogs:        NewUserWaterLogs(c),
		Profiles:             NewProfiles(c),
		TrialRecommendations: NewTrialRecommendations(c),
		ChatSupport:          NewChatSupport(c),
	}
}
