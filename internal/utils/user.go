package utils

import (
	"math/rand"
)

// GetRandomAvatar 返回一个随机 emoji 用于默认头像
func GetRandomAvatar() string {
	avatars := CommonAvatars()
	return avatars[rand.Intn(len(avatars))]
}

// CommonAvatars 返回可选 emoji 头像列表
func CommonAvatars() []string {
	return []string{
		"🌱", "🌿", "🍃", "🌾", "🌲", "🌳",
		"🐼", "🦊", "🐨", "🐸", "🦉", "🐯", "🐱", "🐶",
		"😀", "😄", "😊", "😎", "🤓", "🧐",
		"👨‍💻", "👩‍💻", "🧑‍🚀", "🧙",
		"⭐", "✨", "🔥", "💡", "🚀", "🎯",
	}
}

// IsValidAvatar reports whether the emoji is in the selectable set.
func IsValidAvatar(avatar string) bool {
	for _, a := range CommonAvatars() {
		if a == avatar {
			return true
		}
	}
	return false
}
