// Package ordersvc - Enrich đơn hàng từ membership.
// Đơn có member_id được gắn thêm social refs (theo kênh chat) và tag names.
package ordersvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "github.com/NareeyaChenu/rfm-project/internal/api/base/service"
	ordermodels "github.com/NareeyaChenu/rfm-project/internal/api/order/models"
	"github.com/NareeyaChenu/rfm-project/internal/common"
	"github.com/NareeyaChenu/rfm-project/internal/global"
	"github.com/NareeyaChenu/rfm-project/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberEnrichService tra cứu members/member_tags/member_channels
// để gắn social refs và tags lên đơn trước khi gộp.
type MemberEnrichService struct {
	members  *basesvc.BaseServiceMongoImpl[ordermodels.Member]
	tags     *basesvc.BaseServiceMongoImpl[ordermodels.MemberTag]
	channels *basesvc.BaseServiceMongoImpl[ordermodels.MemberChannel]
}

// NewMemberEnrichService tạo MemberEnrichService mới.
func NewMemberEnrichService() (*MemberEnrichService, error) {
	memberColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Members)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Members, common.ErrNotFound)
	}
	tagColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MemberTags)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.MemberTags, common.ErrNotFound)
	}
	channelColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MemberChannels)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.MemberChannels, common.ErrNotFound)
	}
	return &MemberEnrichService{
		members:  basesvc.NewBaseServiceMongo[ordermodels.Member](memberColl),
		tags:     basesvc.NewBaseServiceMongo[ordermodels.MemberTag](tagColl),
		channels: basesvc.NewBaseServiceMongo[ordermodels.MemberChannel](channelColl),
	}, nil
}

// memberInfo kết quả tra cứu một member, cache theo member_id.
type memberInfo struct {
	socials []ordermodels.SocialRef
	tags    []string
}

// memberFilter tra member theo member_id. Document cũ lưu member_id làm _id
// nên thử cả hai dạng.
func memberFilter(memberID string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(memberID); err == nil {
		return bson.M{"$or": bson.A{
			bson.M{"_id": oid},
			bson.M{"member_id": memberID},
		}}
	}
	return bson.M{"member_id": memberID}
}

// socialFromMember chọn (platform, social_id) theo thứ tự ưu tiên
// Facebook > LINE > Instagram.
func socialFromMember(m *ordermodels.Member) (platform, socialID string) {
	if m.FacebookProfile != nil && m.FacebookProfile.FacebookID != "" {
		return "FACEBOOK", m.FacebookProfile.FacebookID
	}
	if m.LineProfile != nil && m.LineProfile.LineID != "" {
		return "LINE", m.LineProfile.LineID
	}
	if m.InstagramProfile != nil && m.InstagramProfile.Igsid != "" {
		return "INSTAGRAM", m.InstagramProfile.Igsid
	}
	return "", ""
}

// EnrichOrders gắn social refs và tags cho từng đơn có member_id.
// Member có nhiều kênh chat thì mỗi kênh một social ref (cùng social_id),
// không có kênh nào thì một ref duy nhất. Mutate tại chỗ trên slice.
func (s *MemberEnrichService) EnrichOrders(ctx context.Context, orders []ordermodels.SalesOrder) error {
	log := logger.WithModule("order")

	// Cache theo member_id: nhiều đơn cùng một member là chuyện thường.
	cache := make(map[string]*memberInfo)

	enriched := 0
	for i := range orders {
		memberID := orders[i].MemberID
		if memberID == "" {
			continue
		}
		info, ok := cache[memberID]
		if !ok {
			var err error
			info, err = s.lookupMember(ctx, memberID)
			if err != nil {
				return err
			}
			cache[memberID] = info
		}
		if info == nil {
			continue
		}
		orders[i].Social = append(orders[i].Social, info.socials...)
		if len(info.tags) > 0 {
			orders[i].Tags = append(orders[i].Tags, info.tags...)
		}
		enriched++
	}
	log.Infof("Đã enrich %d/%d đơn từ membership (%d member)", enriched, len(orders), len(cache))
	return nil
}

// lookupMember đọc member + tags + channels, dựng social refs.
// Trả về nil (không lỗi) khi member không tồn tại.
func (s *MemberEnrichService) lookupMember(ctx context.Context, memberID string) (*memberInfo, error) {
	member, err := s.members.FindOne(ctx, memberFilter(memberID), nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	platform, socialID := socialFromMember(&member)

	tagDocs, err := s.tags.Find(ctx, bson.M{"member_id": memberID}, nil)
	if err != nil {
		return nil, err
	}
	tagNames := make([]string, 0, len(tagDocs))
	for _, t := range tagDocs {
		if t.TagName != "" {
			tagNames = append(tagNames, t.TagName)
		}
	}

	channelDocs, err := s.channels.Find(ctx, bson.M{"member_id": memberID}, nil)
	if err != nil {
		return nil, err
	}

	base := ordermodels.SocialRef{
		Platform:   platform,
		SocialID:   socialID,
		SocialName: member.MemberName,
		WsisID:     memberID,
	}
	var socials []ordermodels.SocialRef
	if len(channelDocs) == 0 {
		socials = []ordermodels.SocialRef{base}
	} else {
		socials = make([]ordermodels.SocialRef, 0, len(channelDocs))
		for _, ch := range channelDocs {
			ref := base
			ref.ChannelName = ch.ChannelName
			socials = append(socials, ref)
		}
	}

	return &memberInfo{socials: socials, tags: tagNames}, nil
}
