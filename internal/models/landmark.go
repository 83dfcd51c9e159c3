package models

import "strconv"

// Landmark - опорная точка кампуса
type Landmark struct {
	Name     string   `json:"name"`
	Location Location `json:"coords"`
}

// CampusCenter - центр главного кампуса University of Houston
var CampusCenter = Location{Lat: 29.7199, Lng: -95.3422}

// CampusLocations - фиксированный список ориентиров, из которого засевается хранилище
var CampusLocations = []Landmark{
	{Name: "TDECU Stadium", Location: Location{Lat: 29.7218, Lng: -95.3491}},
	{Name: "Student Center South", Location: Location{Lat: 29.7176, Lng: -95.3444}},
	{Name: "MD Anderson Library", Location: Location{Lat: 29.7199, Lng: -95.3448}},
	{Name: "Cullen Performance Hall", Location: Location{Lat: 29.7220, Lng: -95.3435}},
	{Name: "Fertitta Center", Location: Location{Lat: 29.7232, Lng: -95.3475}},
	{Name: "College of Architecture", Location: Location{Lat: 29.7208, Lng: -95.3405}},
}

// IncidentTypes - категории, предлагаемые при ручном вводе инцидента
var IncidentTypes = []string{
	"Suspicious Activity",
	"Unauthorized Protesting",
	"Blue Light Trigger",
	"Medical Assistance",
	"Facility Breach",
	"Theft Reported",
	"Verbal Altercation",
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
