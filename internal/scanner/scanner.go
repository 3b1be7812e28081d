package scanner

import (
	"database/sql"

	model "github.com/Gergov8/runnalog/internal/models"
	"github.com/Gergov8/runnalog/internal/utils"
)

// ScanUserProfile scanne une ligne SQL vers un UserProfile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUserProfile(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserProfile, error) {
	var user model.UserProfile
	var firstName, lastName, picture, country sql.NullString

	err := scanner.Scan(
		&user.ID, &user.Username, &user.Email,
		&firstName, &lastName, &picture, &country,
		&user.Role, &user.Active, &user.CreatedOn, &user.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	user.FirstName = utils.NullStringToString(firstName)
	user.LastName = utils.NullStringToString(lastName)
	user.ProfilePicture = utils.NullStringToString(picture)
	user.Country = utils.NullStringToString(country)

	return &user, nil
}

// ScanRun scanne une ligne SQL vers un Run
func ScanRun(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Run, error) {
	var run model.Run
	var description sql.NullString

	err := scanner.Scan(
		&run.ID, &run.UserID, &run.Distance, &run.DurationSeconds,
		&run.Pace, &run.Title, &description, &run.Visibility, &run.CreatedOn,
	)
	if err != nil {
		return nil, err
	}

	run.Description = utils.NullStringToString(description)

	return &run, nil
}

// ScanFeedRun scanne une ligne du feed : course + pseudo, photo et compteur
// de likes issus des jointures.
func ScanFeedRun(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Run, error) {
	var run model.Run
	var description, picture sql.NullString
	var likes sql.NullInt64

	err := scanner.Scan(
		&run.ID, &run.UserID, &run.Distance, &run.DurationSeconds,
		&run.Pace, &run.Title, &description, &run.Visibility, &run.CreatedOn,
		&run.Username, &picture, &likes, &run.LikedByCurrentUser,
	)
	if err != nil {
		return nil, err
	}

	run.Description = utils.NullStringToString(description)
	run.ProfilePicture = utils.NullStringToString(picture)
	run.LikesCount = utils.NullInt64ToInt(likes)

	return &run, nil
}

// ScanStats scanne une ligne SQL vers un Stats
// Les records personnels absents restent nil
func ScanStats(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Stats, error) {
	var stats model.Stats
	var pb1, pb5, pb10 sql.NullString

	err := scanner.Scan(
		&stats.ID, &stats.UserID, &stats.TotalRuns, &stats.TotalDistance,
		&stats.TotalDuration, &pb1, &pb5, &pb10,
		&stats.Strides, &stats.RunnerLevel, &stats.LastActivity,
	)
	if err != nil {
		return nil, err
	}

	stats.Pb1km = utils.NullStringToPointer(pb1)
	stats.Pb5km = utils.NullStringToPointer(pb5)
	stats.Pb10km = utils.NullStringToPointer(pb10)

	return &stats, nil
}

// ScanSubscription scanne une ligne SQL vers une Subscription
func ScanSubscription(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Subscription, error) {
	var sub model.Subscription

	err := scanner.Scan(
		&sub.ID, &sub.UserID, &sub.Status, &sub.Type, &sub.Period,
		&sub.Price, &sub.RenewalAllowed, &sub.CreatedOn, &sub.ExpiryOn,
	)
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

// ScanComment scanne une ligne SQL vers un Comment, pseudo inclus
func ScanComment(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.Comment, error) {
	var comment model.Comment

	err := scanner.Scan(
		&comment.ID, &comment.RunID, &comment.UserID,
		&comment.Username, &comment.Content, &comment.CreatedOn,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}
