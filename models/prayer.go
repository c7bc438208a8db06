package models

// PrayerTimes holds the daily prayer schedule as time-of-day strings,
// as returned by the Aladhan API.
type PrayerTimes struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}
