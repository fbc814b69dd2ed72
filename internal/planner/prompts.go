package planner

import (
	"fmt"
	"strings"
)

const extractionSystemPrompt = `You are a travel planner. Extract destination options from a dream vacation description and propose a short plan as STRICT JSON.

Required JSON keys:
- userQuery: string, the traveller's request restated in one sentence
- durationDays: integer >= 1
- budget: one of "low", "medium", "high"
- themes: array of short lowercase strings
- destinationOptions: array of {"name": string, "country": string (optional), "summary": string (optional), "tags": array of strings}

List the best destination first. Only output JSON.`

const itineraryUserPrompt = `Return the itinerary JSON object now.`

// itinerarySystemPrompt asks for a day-by-day plan. The backend's JSON mode
// only produces objects, so the array is wrapped under "itinerary".
func itinerarySystemPrompt(destination string, days int, themes []string) string {
	themeList := strings.Join(themes, ", ")
	if themeList == "" {
		themeList = "relaxation"
	}
	return fmt.Sprintf(`Create a %d-day itinerary for %s optimized for themes %s.

Each day is {"day": number starting at 1, "title": string, "activities": [{"time": string, "name": string, "description": string (optional), "lat": number (optional), "lng": number (optional)}]}.
Give lat and lng together or not at all. No extra text.

IMPORTANT: Wrap the JSON array in a JSON object with a key 'itinerary'.
Example: { "itinerary": [...] }`, days, destination, themeList)
}
