// Package mapgen renders the classified project records as a single
// self-contained interactive Leaflet map document.
package mapgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/isee3s/floodcontrolph/internal/project"
)

// Fixed view over the Philippines, matching the source dataset.
const (
	CenterLat = 11.5531
	CenterLon = 124.7341
	ZoomLevel = 6
)

// marker is one map pin, serialized into the document as JSON.
type marker struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Color   string  `json:"color"`
	Tooltip string  `json:"tooltip"`
	Popup   string  `json:"popup"`
}

// layer is a toggleable group of markers sharing a cost band.
type layer struct {
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Markers []marker `json:"markers"`
}

type pageData struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Layers    []layer
}

// Render writes the map document for records to w. The band slice is
// the explicit band-to-layer association: one layer per band, in order.
// Records whose cost classifies to no band produce no marker; they stay
// in the spreadsheet export but are deliberately absent from the map.
func Render(w io.Writer, records []*project.Record, bands []project.Band) error {
	layers := make([]layer, len(bands))
	index := make(map[project.Band]*layer, len(bands))
	for i, b := range bands {
		layers[i] = layer{Name: b.Label(), Color: b.Color(), Markers: []marker{}}
		index[b] = &layers[i]
	}

	for _, rec := range records {
		band := project.Classify(rec.Cost)
		if !band.Classified() {
			continue
		}
		grp, ok := index[band]
		if !ok {
			continue
		}
		cost := "₱" + formatAmount(rec.Cost)
		grp.Markers = append(grp.Markers, marker{
			Lat:     rec.Latitude,
			Lon:     rec.Longitude,
			Color:   band.Color(),
			Tooltip: cost,
			Popup:   fmt.Sprintf("<b>%s</b><br>Cost: %s", template.HTMLEscapeString(rec.Title), cost),
		})
	}

	return mapTemplate.Execute(w, pageData{
		CenterLat: CenterLat,
		CenterLon: CenterLon,
		Zoom:      ZoomLevel,
		Layers:    layers,
	})
}

// WriteMap renders the map document and writes it to path.
func WriteMap(records []*project.Record, bands []project.Band, path string) error {
	var buf bytes.Buffer
	if err := Render(&buf, records, bands); err != nil {
		return fmt.Errorf("rendering map: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing map file: %w", err)
	}
	return nil
}

// formatAmount renders a cost with comma thousands separators and no
// decimals, e.g. 75000000 -> "75,000,000".
func formatAmount(v float64) string {
	s := strconv.FormatInt(int64(math.Round(v)), 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// toJSON marshals v for embedding inside the document's script block.
func toJSON(v interface{}) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}

var mapTemplate = template.Must(template.New("map").Funcs(template.FuncMap{
	"toJSON": toJSON,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
   <meta charset="UTF-8"/>
   <title>National Flood Control Projects</title>
   <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
   <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
   <style>
      html, body { margin: 0; padding: 0; height: 100%; }
      #map { height: 100%; width: 100%; }
      .cost-legend {
         position: fixed; bottom: 30px; left: 30px; width: 160px;
         background-color: white; border: 2px solid grey; z-index: 9999;
         font-size: 14px; padding: 10px; border-radius: 5px;
      }
      .cost-legend i {
         width: 12px; height: 12px; display: inline-block; margin-right: 5px;
      }
   </style>
</head>
<body>
   <div id="map"></div>
   <div class="cost-legend">
      <b>Cost Legend</b><br>
{{- range .Layers}}
      <i style="background: {{.Color}};"></i> {{.Name}}<br>
{{- end}}
   </div>
   <script>
      var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
      L.control.scale().addTo(map);
      L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
         maxZoom: 19,
         attribution: '&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors'
      }).addTo(map);

      var layers = {{toJSON .Layers}};
      var overlays = {};
      layers.forEach(function (layer) {
         var group = L.layerGroup();
         layer.markers.forEach(function (m) {
            L.circleMarker([m.lat, m.lon], {
               radius: 8,
               color: m.color,
               fill: true,
               fillColor: m.color,
               fillOpacity: 0.7
            }).bindTooltip(m.tooltip).bindPopup(m.popup, { maxWidth: 300 }).addTo(group);
         });
         group.addTo(map);
         overlays[layer.name] = group;
      });
      L.control.layers(null, overlays, { collapsed: false }).addTo(map);
   </script>
</body>
</html>
`))
