package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"adhkari/models"
)

// Calculation method 4: Umm Al-Qura University, Makkah
const aladhanMethod = 4

var prayerTimesHTTPClient = &http.Client{Timeout: 10 * time.Second}

// capitalByCountry maps a country to the city used for its prayer schedule.
// Countries without an entry fall back to Makkah.
var capitalByCountry = map[string]string{
	"Saudi Arabia": "Riyadh",
	"Egypt":        "Cairo",
	"UAE":          "Dubai",
	"Kuwait":       "Kuwait City",
	"Qatar":        "Doha",
	"Bahrain":      "Manama",
	"Oman":         "Muscat",
	"Jordan":       "Amman",
	"Lebanon":      "Beirut",
	"Palestine":    "Jerusalem",
	"Syria":        "Damascus",
	"Iraq":         "Baghdad",
	"Morocco":      "Rabat",
	"Tunisia":      "Tunis",
	"Algeria":      "Algiers",
	"Libya":        "Tripoli",
	"Sudan":        "Khartoum",
	"Yemen":        "Sanaa",
	"Mauritania":   "Nouakchott",
	"Somalia":      "Mogadishu",
	"Djibouti":     "Djibouti",
	"Comoros":      "Moroni",
}

type aladhanResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings models.PrayerTimes `json:"timings"`
	} `json:"data"`
}

// FetchPrayerTimes looks up today's prayer schedule for a country via the
// Aladhan API. Any network or lookup failure returns an error the caller
// should treat as "not yet available", never as fatal.
func FetchPrayerTimes(ctx context.Context, baseURL, country string) (*models.PrayerTimes, error) {
	city, ok := capitalByCountry[country]
	if !ok {
		city = "Makkah"
	}

	endpoint := fmt.Sprintf("%s/v1/timingsByCity?city=%s&country=%s&method=%d",
		baseURL, url.QueryEscape(city), url.QueryEscape(country), aladhanMethod)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build prayer times request: %w", err)
	}

	resp, err := prayerTimesHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prayer times lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prayer times lookup returned status %d", resp.StatusCode)
	}

	var payload aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode prayer times response: %w", err)
	}
	if payload.Code != http.StatusOK {
		return nil, fmt.Errorf("prayer times lookup returned code %d", payload.Code)
	}

	return &payload.Data.Timings, nil
}
