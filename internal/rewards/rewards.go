package rewards

import (
	"time"

	"github.com/abhayrai8299/creator-assignment-backend/internal/models"
)

// Point values for every reward rule.
const (
	DailyLoginPoints   int64 = 10 // First login of a calendar day
	ProfileBonusPoints int64 = 50 // One-time bonus on first login with incomplete profile
	SavePoints         int64 = 5  // Saving a feed item not saved before
	SharePoints        int64 = 3  // Sharing a feed item, uncapped
	ReportPenalty      int64 = 2  // Deducted for reporting a feed item
	ProfileFieldPoints int64 = 5  // Per changed profile field (bio, picture)
)

// Result describes the outcome of applying a reward rule to a user.
// The rule has already mutated the user record in place; Delta and the
// optional SavedFeed/Activity records tell the caller what to persist.
type Result struct {
	Delta     int64              // Applied credit delta, may be zero or negative
	SavedFeed *models.FeedItem   // New saved feed entry, if any
	Activity  *models.ActivityDB // New activity log entry, if any
}

// Login applies the login rules: +10 for the first login of a calendar
// day (server-local time), +50 once if the profile is not yet complete.
// lastLogin is always advanced to now.
func Login(user *models.UserDB, now time.Time) Result {
	var res Result

	if user.LastLogin == nil || !sameCalendarDay(*user.LastLogin, now) {
		res.Delta += DailyLoginPoints
	}

	if !user.ProfileComplete {
		res.Delta += ProfileBonusPoints
		user.ProfileComplete = true
	}

	user.Credits += res.Delta
	user.LastLogin = &now

	return res
}

// SaveFeed grants +5 and records the item unless the url is already
// present in the user's saved feeds, in which case nothing changes.
func SaveFeed(user *models.UserDB, item models.FeedItem, now time.Time) Result {
	for _, saved := range user.SavedFeeds {
		if saved.URL == item.URL {
			return Result{}
		}
	}

	activity := models.ActivityDB{
		Action: models.ActionSaved,
		Title:  item.Title,
		Date:   now,
	}

	user.Credits += SavePoints
	user.SavedFeeds = append(user.SavedFeeds, item)
	user.RecentActivity = append(user.RecentActivity, activity)

	return Result{
		Delta:     SavePoints,
		SavedFeed: &item,
		Activity:  &activity,
	}
}

// Share grants +3 unconditionally and records the share.
func Share(user *models.UserDB, item models.FeedItem, now time.Time) Result {
	activity := models.ActivityDB{
		Action: models.ActionShared,
		Title:  item.Title,
		Date:   now,
	}

	user.Credits += SharePoints
	user.RecentActivity = append(user.RecentActivity, activity)

	return Result{
		Delta:    SharePoints,
		Activity: &activity,
	}
}

// Report deducts 2 credits unconditionally and records the report.
// There is no floor; the balance may go negative.
func Report(user *models.UserDB, item models.FeedItem, now time.Time) Result {
	activity := models.ActivityDB{
		Action: models.ActionReported,
		Title:  item.Title,
		Date:   now,
	}

	user.Credits -= ReportPenalty
	user.RecentActivity = append(user.RecentActivity, activity)

	return Result{
		Delta:    -ReportPenalty,
		Activity: &activity,
	}
}

// CompleteProfile grants +5 for each provided field that differs from
// the stored value. Any positive total marks the profile complete.
func CompleteProfile(user *models.UserDB, bio, profilePicture string) Result {
	var res Result

	if bio != "" && bio != user.Profile.Bio {
		user.Profile.Bio = bio
		res.Delta += ProfileFieldPoints
	}

	if profilePicture != "" && profilePicture != user.Profile.ProfilePicture {
		user.Profile.ProfilePicture = profilePicture
		res.Delta += ProfileFieldPoints
	}

	if res.Delta > 0 {
		user.ProfileComplete = true
		user.Credits += res.Delta
	}

	return res
}

// sameCalendarDay reports whether both times fall on the same calendar
// date in the server-local time zone.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
