package services

import (
	"errors"

	"quibble/internal/db"
	"quibble/internal/models"
	"quibble/internal/votes"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Counts is the derived presentation of a ledger: cardinalities, never
// the raw voter lists.
type Counts struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	Score     int64 `json:"score"`
}

// TogglePostVote applies one toggle for the user on a post and returns the
// derived counts.
func TogglePostVote(userID, postID uint, dir votes.Direction) (Counts, error) {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Counts{}, ErrNotFound
		}
		return Counts{}, err
	}
	return toggle(userID, dir, "post_id", postID, func(v *models.Vote) { v.PostID = &postID },
		func(tx *gorm.DB, score int64) error {
			return tx.Model(&models.Post{}).Where("id = ?", postID).UpdateColumn("score", score).Error
		})
}

// ToggleCommentVote is the comment flavor; the comment must belong to the post.
func ToggleCommentVote(userID, postID, commentID uint, dir votes.Direction) (Counts, error) {
	var comment models.Comment
	if err := db.DB.Where("id = ? AND post_id = ?", commentID, postID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Counts{}, ErrNotFound
		}
		return Counts{}, err
	}
	return toggle(userID, dir, "comment_id", commentID, func(v *models.Vote) { v.CommentID = &commentID },
		func(tx *gorm.DB, score int64) error {
			return tx.Model(&models.Comment{}).Where("id = ?", commentID).UpdateColumn("score", score).Error
		})
}

// toggle runs the whole read-modify-write in one transaction so two
// concurrent votes on the same item serialize on the single vote row
// instead of overwriting each other's membership list.
func toggle(userID uint, dir votes.Direction, column string, itemID uint,
	bind func(*models.Vote), writeScore func(*gorm.DB, int64) error) (Counts, error) {

	var counts Counts
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Vote
		err := tx.Where("user_id = ? AND "+column+" = ?", userID, itemID).First(&existing).Error

		switch {
		case err == nil && existing.Value == dir.Value():
			// Same direction again: un-vote
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		case err == nil:
			// Opposite direction held: switch
			if err := tx.Model(&existing).Update("value", dir.Value()).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			newVote := models.Vote{
				UserID: userID,
				Value:  dir.Value(),
			}
			bind(&newVote)
			if err := tx.Create(&newVote).Error; err != nil {
				return err
			}
		default:
			return err
		}

		c, err := countVotes(tx, column, itemID)
		if err != nil {
			return err
		}
		counts = c

		// 冗余列仅用于排序等场景，真实值以 votes 表为准
		return writeScore(tx, counts.Score)
	})
	if err != nil {
		return Counts{}, err
	}
	return counts, nil
}

// countVotes rebuilds the ledger from the vote rows and derives the counts
// from the set sizes. The score is never read back from the item row.
func countVotes(tx *gorm.DB, column string, itemID uint) (Counts, error) {
	var rows []models.Vote
	if err := tx.Where(column+" = ?", itemID).Find(&rows).Error; err != nil {
		return Counts{}, err
	}

	ledger := votes.NewLedger()
	for _, v := range rows {
		if v.Value == votes.Up.Value() {
			ledger.Upvoters[v.UserID] = struct{}{}
		} else {
			ledger.Downvoters[v.UserID] = struct{}{}
		}
	}

	return Counts{
		Upvotes:   int64(len(ledger.Upvoters)),
		Downvotes: int64(len(ledger.Downvoters)),
		Score:     int64(ledger.Score()),
	}, nil
}

// PostCounts recomputes the derived counts for a post at read time.
func PostCounts(postID uint) (Counts, error) {
	return countVotes(db.DB, "post_id", postID)
}

// CommentCounts recomputes the derived counts for a comment at read time.
func CommentCounts(commentID uint) (Counts, error) {
	return countVotes(db.DB, "comment_id", commentID)
}
