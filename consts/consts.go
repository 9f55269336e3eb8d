package consts

const (
	// FeedPageSize bounds each feed sub-query and the composed feed
	FeedPageSize = 50

	// CardCandidateLimit bounds the open cards fetched before matching rules apply
	CardCandidateLimit = 200

	// DefaultNearbyRadiusMiles is used when neither the request nor the config sets a radius
	DefaultNearbyRadiusMiles = 25.0

	// MaxNearbyRadiusMiles caps client supplied radius
	MaxNearbyRadiusMiles = 500.0

	InviteCodeLength   = 6
	InviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	CommentMaxLength = 2000
)
