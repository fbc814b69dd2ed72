package flights

import "github.com/Sgowda7697/Dream2Reality/internal/domain"

// MockFlights returns the fixed substitute offers used whenever the live
// search cannot produce a result. Each call returns a fresh slice.
func MockFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID: "mock-1", Airline: "IndiGo", FlightNumber: "6E-431",
			DepartTime: "07:00", ArrivalTime: "09:30", Duration: "2h 30m",
			Price: 4500, Currency: "INR", Stops: 0, From: "DEL", To: "BOM",
			ReturnDepartTime: "18:00", ReturnArrivalTime: "20:30",
		},
		{
			ID: "mock-2", Airline: "Air India", FlightNumber: "AI-131",
			DepartTime: "14:00", ArrivalTime: "16:45", Duration: "2h 45m",
			Price: 6200, Currency: "INR", Stops: 0, From: "DEL", To: "BOM",
			ReturnDepartTime: "12:00", ReturnArrivalTime: "14:45",
		},
		{
			ID: "mock-3", Airline: "SpiceJet", FlightNumber: "SG-8709",
			DepartTime: "20:15", ArrivalTime: "22:50", Duration: "2h 35m",
			Price: 3800, Currency: "INR", Stops: 0, From: "DEL", To: "BOM",
			ReturnDepartTime: "16:30", ReturnArrivalTime: "19:05",
		},
	}
}
