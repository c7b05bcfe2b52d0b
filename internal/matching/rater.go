package matching

import (
	"unicode/utf8"

	"alumni-connect-workers/internal/models"
)

// bioMinLength is the bio length a profile must exceed to earn bio points.
const bioMinLength = 50

// Rate scores a profile along four capped dimensions. Network strength adds
// a flat +5 on top of its linear term once a profile has more than five
// connections.
func Rate(p models.Profile, c models.ActivityCounters) ProfileRating {
	var b RatingBreakdown

	completeness := 0
	if p.Name != "" {
		completeness += 5
	}
	if p.Headline != "" {
		completeness += 5
	}
	if utf8.RuneCountInString(p.Bio) > bioMinLength {
		completeness += 10
		b.HasBio = true
	}
	if p.Branch != "" {
		completeness += 5
	}
	b.ProfileComplete = completeness >= 20

	engagement := min(c.Posts*3, 10) + min(c.Comments*2, 10) + min(c.Connections, 5)
	b.HasActivity = c.Posts > 0 || c.Comments > 0

	expertise := 0
	if c.SkillCount > 0 {
		expertise += min(c.SkillCount*2, 15)
		b.HasSkills = true
	}
	expertise += min(c.Endorsements*2, 10)

	network := min(c.Connections*2, 20)
	if c.Connections > 5 {
		network += 5
		b.HasConnections = true
	}

	return ProfileRating{
		UserID:          p.ID,
		OverallScore:    completeness + engagement + expertise + network,
		Completeness:    completeness,
		Engagement:      engagement,
		Expertise:       expertise,
		NetworkStrength: network,
		Breakdown:       b,
	}
}

// RatingInsights turns a rating into a short list of messages: an overall
// verdict followed by one tip per missing breakdown flag.
func RatingInsights(r ProfileRating) []string {
	var insights []string
	switch {
	case r.OverallScore >= 80:
		insights = append(insights, "Outstanding profile! You are highly visible to the network.")
	case r.OverallScore >= 60:
		insights = append(insights, "Strong profile. A few additions will make it stand out.")
	case r.OverallScore >= 40:
		insights = append(insights, "Moderate profile strength. Consider filling in the gaps below.")
	default:
		insights = append(insights, "Your profile needs attention. Start with the tips below.")
	}

	if !r.Breakdown.ProfileComplete {
		insights = append(insights, "Tip: Complete your name, headline and branch.")
	}
	if !r.Breakdown.HasBio {
		insights = append(insights, "Tip: Write a bio longer than 50 characters.")
	}
	if !r.Breakdown.HasSkills {
		insights = append(insights, "Tip: Add skills so others can find and endorse you.")
	}
	if !r.Breakdown.HasConnections {
		insights = append(insights, "Tip: Grow your network beyond five connections.")
	}
	if !r.Breakdown.HasActivity {
		insights = append(insights, "Tip: Share a post or join a discussion.")
	}
	return insights
}
