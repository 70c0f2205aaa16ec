package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const meetingRoomBase = "https://meet.jit.si/istem-"

// GenerateMeetingRoomURL returns a fresh external room URL for
// meetings created without one.
func GenerateMeetingRoomURL() string {
	return meetingRoomBase + uuid.NewString()
}

// VerifyMeetingURL probes an externally supplied join URL. Failures are
// logged only; the meeting is stored either way since the URL may only
// become live closer to the scheduled time.
func VerifyMeetingURL(meetingURL string) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().Head(meetingURL)
	if err != nil {
		log.Printf("Meeting URL %s not reachable: %v", meetingURL, err)
		return
	}

	if resp.StatusCode() >= 400 {
		log.Printf("Meeting URL %s responded with status %d", meetingURL, resp.StatusCode())
	}
}
