package app

import "github.com/JaimeStill/discvault/pkg/spa"

// Routes is the DiscVault client route table. Album detail and genre views
// are split into deferred chunks.
var Routes = spa.MustTable(
	spa.Route{Path: "/", Name: "dashboard", View: "DashboardView"},
	spa.Route{Path: "/collection", Name: "collection", View: "CollectionView"},
	spa.Route{Path: "/albums/:id", Name: "album-detail", View: "AlbumDetailView", Lazy: true},
	spa.Route{Path: "/scan", Name: "scan", View: "ScanView"},
	spa.Route{Path: "/locations", Name: "locations", View: "LocationView"},
	spa.Route{Path: "/genres", Name: "genres", View: "GenreView", Lazy: true},
)
