package platform

// Spec describes one advertising surface. Safe-zone insets are in pixels.
type Spec struct {
	Name                 string   `json:"name"`
	DisplayName          string   `json:"displayName"`
	Width                int      `json:"width"`
	Height               int      `json:"height"`
	MaxHeadlineLength    int      `json:"maxHeadlineLength"`
	MaxDescriptionLength int      `json:"maxDescriptionLength"`
	SafeZone             SafeZone `json:"safeZone"`
	FontScale            float64  `json:"fontScale"`
	CTAStyle             CTAStyle `json:"ctaStyle"`
	TextAnchor           Anchor   `json:"textAnchor"`
}

type SafeZone struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

type CTAStyle string

const (
	CTAButton CTAStyle = "button"
	CTAPill   CTAStyle = "pill"
	CTASwipe  CTAStyle = "swipe_up"
	CTAText   CTAStyle = "text_link"
)

type Anchor string

const (
	AnchorTop    Anchor = "top"
	AnchorCenter Anchor = "center"
	AnchorBottom Anchor = "bottom"
)

const (
	FacebookFeed   = "facebook_feed"
	InstagramFeed  = "instagram_feed"
	InstagramStory = "instagram_story"
	TikTok         = "tiktok"
	Snapchat       = "snapchat"
	GoogleDisplay  = "google_display"
	LinkedInFeed   = "linkedin_feed"
	TwitterFeed    = "twitter_feed"
)

// order is the stable listing order of Names.
var order = []string{
	FacebookFeed,
	InstagramFeed,
	InstagramStory,
	TikTok,
	Snapchat,
	GoogleDisplay,
	LinkedInFeed,
	TwitterFeed,
}

var specs = map[string]Spec{
	FacebookFeed: {
		Name: FacebookFeed, DisplayName: "Facebook Feed",
		Width: 1080, Height: 1080,
		MaxHeadlineLength: 40, MaxDescriptionLength: 125,
		SafeZone:  SafeZone{Top: 54, Bottom: 54, Left: 54, Right: 54},
		FontScale: 1.0, CTAStyle: CTAButton, TextAnchor: AnchorCenter,
	},
	InstagramFeed: {
		Name: InstagramFeed, DisplayName: "Instagram Feed",
		Width: 1080, Height: 1350,
		MaxHeadlineLength: 40, MaxDescriptionLength: 125,
		SafeZone:  SafeZone{Top: 68, Bottom: 68, Left: 54, Right: 54},
		FontScale: 1.0, CTAStyle: CTAButton, TextAnchor: AnchorCenter,
	},
	InstagramStory: {
		Name: InstagramStory, DisplayName: "Instagram Story",
		Width: 1080, Height: 1920,
		MaxHeadlineLength: 30, MaxDescriptionLength: 90,
		SafeZone:  SafeZone{Top: 250, Bottom: 340, Left: 64, Right: 64},
		FontScale: 1.2, CTAStyle: CTASwipe, TextAnchor: AnchorCenter,
	},
	TikTok: {
		Name: TikTok, DisplayName: "TikTok",
		Width: 1080, Height: 1920,
		MaxHeadlineLength: 30, MaxDescriptionLength: 100,
		SafeZone:  SafeZone{Top: 160, Bottom: 480, Left: 64, Right: 140},
		FontScale: 1.25, CTAStyle: CTAPill, TextAnchor: AnchorTop,
	},
	Snapchat: {
		Name: Snapchat, DisplayName: "Snapchat",
		Width: 1080, Height: 1920,
		MaxHeadlineLength: 34, MaxDescriptionLength: 80,
		SafeZone:  SafeZone{Top: 150, Bottom: 300, Left: 64, Right: 64},
		FontScale: 1.2, CTAStyle: CTASwipe, TextAnchor: AnchorCenter,
	},
	GoogleDisplay: {
		Name: GoogleDisplay, DisplayName: "Google Display",
		Width: 1200, Height: 628,
		MaxHeadlineLength: 30, MaxDescriptionLength: 90,
		SafeZone:  SafeZone{Top: 20, Bottom: 20, Left: 20, Right: 20},
		FontScale: 0.9, CTAStyle: CTAButton, TextAnchor: AnchorCenter,
	},
	LinkedInFeed: {
		Name: LinkedInFeed, DisplayName: "LinkedIn Feed",
		Width: 1200, Height: 627,
		MaxHeadlineLength: 70, MaxDescriptionLength: 150,
		SafeZone:  SafeZone{Top: 30, Bottom: 30, Left: 40, Right: 40},
		FontScale: 0.95, CTAStyle: CTAText, TextAnchor: AnchorBottom,
	},
	TwitterFeed: {
		Name: TwitterFeed, DisplayName: "X (Twitter) Feed",
		Width: 1200, Height: 675,
		MaxHeadlineLength: 50, MaxDescriptionLength: 200,
		SafeZone:  SafeZone{Top: 30, Bottom: 30, Left: 30, Right: 30},
		FontScale: 0.95, CTAStyle: CTAText, TextAnchor: AnchorBottom,
	},
}
