// Package models - Member và các collection phụ trợ enrichment
// (members, member_tags, member_channels).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FacebookProfile profile Facebook của member.
type FacebookProfile struct {
	FacebookID string `json:"facebook_id,omitempty" bson:"facebook_id,omitempty"`
}

// LineProfile profile LINE của member.
type LineProfile struct {
	LineID string `json:"line_id,omitempty" bson:"line_id,omitempty"`
}

// InstagramProfile profile Instagram của member. Instagram dùng igsid.
type InstagramProfile struct {
	Igsid string `json:"igsid,omitempty" bson:"igsid,omitempty"`
}

// Member hồ sơ membership (members). Nguồn enrichment social/tags cho đơn.
type Member struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	MemberID   string `json:"member_id,omitempty" bson:"member_id,omitempty" index:"single:1"`
	MemberName string `json:"member_name,omitempty" bson:"member_name,omitempty"`

	FacebookProfile  *FacebookProfile  `json:"facebook_profile,omitempty" bson:"facebook_profile,omitempty"`
	LineProfile      *LineProfile      `json:"line_profile,omitempty" bson:"line_profile,omitempty"`
	InstagramProfile *InstagramProfile `json:"instagram_profile,omitempty" bson:"instagram_profile,omitempty"`

	ProviderID string `json:"provider_id,omitempty" bson:"provider_id,omitempty"`
}

// MemberTag tag gắn với member (member_tags).
type MemberTag struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	MemberID string `json:"member_id,omitempty" bson:"member_id,omitempty" index:"single:1"`
	TagName  string `json:"tag_name,omitempty" bson:"tag_name,omitempty"`
}

// MemberChannel kênh chat của member (member_channels).
type MemberChannel struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	MemberID    string `json:"member_id,omitempty" bson:"member_id,omitempty" index:"single:1"`
	ChannelName string `json:"channel_name,omitempty" bson:"channel_name,omitempty"`
}
