// internal/app/interfaces.go
package app

import "github.com/llehouerou/waveradio/internal/stations"

// StationStore is the part of the station catalog the UI edits.
type StationStore interface {
	List() ([]stations.Station, error)
	Add(st stations.Station) (stations.Station, error)
	Update(st stations.Station) error
	Delete(id int64) error
	ToggleFavorite(id int64) (bool, error)
}

// Verify the sqlite store satisfies StationStore at compile time.
var _ StationStore = (*stations.Store)(nil)
