package tui

import (
	"github.com/MKhiriev/go-desk-widget/models"
)

var noticeIcons = map[models.Severity]string{
	models.SeveritySuccess: "✓",
	models.SeverityError:   "✗",
	models.SeverityInfo:    "i",
}

// renderNotice draws the newest active notice as a single toast line.
func renderNotice(n models.Notice, ok bool, width int) string {
	if !ok {
		return ""
	}
	style, found := noticeStyles[string(n.Severity)]
	if !found {
		style = noticeStyles[string(models.SeverityInfo)]
	}
	return style.Render(fitText(noticeIcons[n.Severity]+" "+n.Message, width))
}
