package campaign

import (
	"fmt"
	"net/url"
)

const qrRenderEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// QRCode describes a rendered QR deliverable pointing at a tracker link
type QRCode struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	TrackingURL string `json:"trackingUrl"`
	Scans       int64  `json:"scans"`
}

// SocialMediaPost describes a platform-specific post draft
type SocialMediaPost struct {
	ID       int      `json:"id"`
	Platform string   `json:"platform"`
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
	ImageURL string   `json:"imageUrl"`
}

// Pamphlet describes a print-collateral deliverable
type Pamphlet struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DownloadURL string `json:"downloadUrl"`
	PreviewURL  string `json:"previewUrl"`
	Format      string `json:"format"`
}

// AssetBundle is the full set of deliverables generated for a campaign
type AssetBundle struct {
	QRCodes          []QRCode          `json:"qrCodes"`
	SocialMediaPosts []SocialMediaPost `json:"socialMediaPosts"`
	Pamphlets        []Pamphlet        `json:"pamphlets"`
}

// BuildAssetBundle synthesizes the deliverable bundle for a committed
// campaign. The bundle is derived entirely from the campaign record and its
// tracker links, so rebuilding it for the same campaign yields the same
// assets.
func BuildAssetBundle(c *Campaign, links []*TrackerLink, trackingBaseURL string) AssetBundle {
	hashtag := Brief{Theme: c.Theme}.Hashtag()
	validUntil := c.EndDate.Format("2006-01-02")

	qrCodes := make([]QRCode, 0, len(links))
	for i, link := range links {
		name := "Main Campaign QR"
		if link.Channel == TrackerChannelWhatsApp {
			name = "WhatsApp Share QR"
		}
		trackingURL := fmt.Sprintf("%s/track/%s", trackingBaseURL, link.Token)
		qrCodes = append(qrCodes, QRCode{
			ID:          i + 1,
			Name:        name,
			URL:         qrRenderEndpoint + "?size=300x300&data=" + url.QueryEscape(trackingURL),
			TrackingURL: trackingURL,
			Scans:       link.Scans,
		})
	}

	posts := []SocialMediaPost{
		{
			ID:       1,
			Platform: "Facebook",
			Content: fmt.Sprintf("🎉 %s is here! %s\n\nDon't miss out on this amazing deal! Visit our store or scan the QR code to claim your offer.\n\n%s #Sale #Offers",
				c.Theme, c.Offer, hashtag),
			Hashtags: []string{"#Sale", "#Offers", hashtag},
			ImageURL: "https://via.placeholder.com/1200x630/3B82F6/FFFFFF?text=Facebook+Post",
		},
		{
			ID:       2,
			Platform: "Instagram",
			Content: fmt.Sprintf("✨ %s ✨\n\n%s\n\nSwipe up or scan our QR code! 📱\n\n%s #InstaSale #LimitedOffer",
				c.Theme, c.Offer, hashtag),
			Hashtags: []string{"#InstaSale", "#LimitedOffer", hashtag},
			ImageURL: "https://via.placeholder.com/1080x1080/8B5CF6/FFFFFF?text=Instagram+Post",
		},
		{
			ID:       3,
			Platform: "WhatsApp",
			Content: fmt.Sprintf("🛍️ *%s* 🛍️\n\n%s\n\n📍 Visit our store today!\n💬 Share with friends and family\n\nValid till %s",
				c.Theme, c.Offer, validUntil),
			Hashtags: []string{},
			ImageURL: "https://via.placeholder.com/800x600/10B981/FFFFFF?text=WhatsApp+Message",
		},
	}

	pamphlets := []Pamphlet{
		{
			ID:          1,
			Name:        "A4 Flyer Design",
			Description: "Professional A4 flyer with QR code and offer details",
			DownloadURL: "#",
			PreviewURL:  "https://via.placeholder.com/595x842/EF4444/FFFFFF?text=A4+Flyer+Design",
			Format:      "PDF",
		},
		{
			ID:          2,
			Name:        "Business Card Insert",
			Description: "Small card design for counter display",
			DownloadURL: "#",
			PreviewURL:  "https://via.placeholder.com/350x200/F59E0B/FFFFFF?text=Business+Card",
			Format:      "PDF",
		},
	}

	return AssetBundle{
		QRCodes:          qrCodes,
		SocialMediaPosts: posts,
		Pamphlets:        pamphlets,
	}
}
