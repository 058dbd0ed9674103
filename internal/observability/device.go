package observability

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceSmartTV = "smarttv"
	DeviceUnknown = "unknown"
)

// DeviceTypeFromUserAgent classifies a raw User-Agent string.
func DeviceTypeFromUserAgent(userAgent string) string {
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return DeviceUnknown
	}

	// tablets first, many of them also say "mobile"
	if strings.Contains(ua, "ipad") ||
		(strings.Contains(ua, "android") && !strings.Contains(ua, "mobile")) ||
		strings.Contains(ua, "tablet") {
		return DeviceTablet
	}

	for _, marker := range []string{"smart-tv", "smarttv", "googletv", "appletv", "roku", "webos", "tizen"} {
		if strings.Contains(ua, marker) {
			return DeviceSmartTV
		}
	}

	if strings.Contains(ua, "mobile") ||
		strings.Contains(ua, "iphone") ||
		strings.Contains(ua, "ipod") {
		return DeviceMobile
	}

	return DeviceDesktop
}

// GetDeviceType classifies the requesting device, honouring the CDN mobile hint when present.
func GetDeviceType(c *gin.Context) string {
	if c.GetHeader("CloudFront-Is-Mobile-Viewer") == "true" {
		return DeviceMobile
	}
	return DeviceTypeFromUserAgent(c.Request.UserAgent())
}

// GetRealClientIP prefers the CDN viewer address over the socket address.
func GetRealClientIP(c *gin.Context) string {
	if viewerAddr := c.GetHeader("CloudFront-Viewer-Address"); viewerAddr != "" {
		if idx := strings.LastIndex(viewerAddr, ":"); idx > 0 {
			return viewerAddr[:idx]
		}
		return viewerAddr
	}
	return c.ClientIP()
}
