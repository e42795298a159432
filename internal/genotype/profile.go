package genotype

// RiskTier grades the chance of an affected child.
type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
)

// Urgency grades how soon the couple should follow up.
type Urgency string

const (
	UrgencyRoutine  Urgency = "routine"
	UrgencyModerate Urgency = "moderate"
	UrgencyHigh     Urgency = "high"
)

// Video is an educational video reference.
type Video struct {
	Title       string `json:"title"`
	VideoID     string `json:"videoId"`
	Description string `json:"description"`
}

// URL is the canonical watch link.
func (v Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.VideoID
}

// AppURLs lists the links to try in order: native app, desktop site, mobile site.
func (v Video) AppURLs() []string {
	return []string{
		"vnd.youtube://" + v.VideoID,
		"https://www.youtube.com/watch?v=" + v.VideoID,
		"https://m.youtube.com/watch?v=" + v.VideoID,
	}
}

// Profile is the compatibility content shown for a genotype combination.
type Profile struct {
	Risk            RiskTier `json:"risk"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Percentage      float64  `json:"percentage"`
	Recommendations []string `json:"recommendations"`
	NextSteps       []string `json:"nextSteps"`
	Urgency         Urgency  `json:"urgency"`
	Videos          []Video  `json:"youtubeVideos"`
}

func (p Profile) clone() Profile {
	p.Recommendations = append([]string(nil), p.Recommendations...)
	p.NextSteps = append([]string(nil), p.NextSteps...)
	p.Videos = append([]Video(nil), p.Videos...)
	return p
}

// CounselingEmphasis is the adverb used when recommending genetic counseling.
func (r RiskTier) CounselingEmphasis() string {
	switch r {
	case RiskHigh:
		return "URGENTLY"
	case RiskModerate:
		return "STRONGLY"
	default:
		return ""
	}
}

// FollowUp is the follow-up instruction for the urgency tier.
func (u Urgency) FollowUp() string {
	switch u {
	case UrgencyHigh:
		return "URGENT: Schedule specialist consultation within 1 week"
	case UrgencyModerate:
		return "Schedule genetic counseling within 2-4 weeks"
	default:
		return "Routine follow-up with healthcare provider as needed"
	}
}
