// Package policy holds the ownership rules for mutating posts and comments.
// Ownership is the only authorization axis, there are no roles.
package policy

import (
	"errors"

	"quibble/internal/models"
)

var ErrForbidden = errors.New("forbidden")

type Action int

const (
	EditPost Action = iota
	DeletePost
	EditComment
	DeleteComment
)

// CanEditPost allows only the author.
func CanEditPost(post *models.Post, callerID uint) error {
	if post.UserID != callerID {
		return ErrForbidden
	}
	return nil
}

// CanDeletePost allows only the author.
func CanDeletePost(post *models.Post, callerID uint) error {
	if post.UserID != callerID {
		return ErrForbidden
	}
	return nil
}

// CanEditComment allows only the comment author.
func CanEditComment(comment *models.Comment, callerID uint) error {
	if comment.UserID != callerID {
		return ErrForbidden
	}
	return nil
}

// CanDeleteComment allows the comment author, and additionally the post
// author so people can moderate comments under their own post.
func CanDeleteComment(post *models.Post, comment *models.Comment, callerID uint) error {
	if comment.UserID == callerID || post.UserID == callerID {
		return nil
	}
	return ErrForbidden
}

// Authorize dispatches on the action. Comment actions need the comment,
// DeleteComment needs the enclosing post as well.
func Authorize(action Action, post *models.Post, comment *models.Comment, callerID uint) error {
	switch action {
	case EditPost:
		return CanEditPost(post, callerID)
	case DeletePost:
		return CanDeletePost(post, callerID)
	case EditComment:
		return CanEditComment(comment, callerID)
	case DeleteComment:
		return CanDeleteComment(post, comment, callerID)
	}
	return ErrForbidden
}
