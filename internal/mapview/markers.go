package mapview

import (
	"bytes"
	"html/template"

	"github.com/jengzang/victory-garden-go/internal/mapwidget"
	"github.com/jengzang/victory-garden-go/internal/models"
)

var popupTemplate = template.Must(template.New("popup").Parse(
	`<h3>{{.Name}}</h3>
<p>Price: ${{.Price}}</p>
<p>Organic: {{if .Organic}}Yes{{else}}No{{end}}</p>`))

// PopupContent renders the info window shown when a produce marker is clicked
func PopupContent(loc models.ProduceLocation) (string, error) {
	var buf bytes.Buffer
	if err := popupTemplate.Execute(&buf, loc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// addMarkers places one marker per location. A location the widget rejects
// is logged and skipped.
func (v *Viewer) addMarkers(locations []models.ProduceLocation) {
	v.logger.Printf("Adding markers...")
	for _, loc := range locations {
		if err := v.addMarker(loc); err != nil {
			v.logger.Printf("Skipping marker %q: %v", loc.Name, err)
			continue
		}
		v.markers++
	}
	v.logger.Printf("Markers added: %d", v.markers)
}

func (v *Viewer) addMarker(loc models.ProduceLocation) error {
	pos, err := mapwidget.LatLng(loc.Lat, loc.Lng)
	if err != nil {
		return err
	}
	content, err := PopupContent(loc)
	if err != nil {
		return err
	}

	marker, err := v.widget.AddMarker(mapwidget.MarkerOptions{Position: pos, Title: loc.Name})
	if err != nil {
		return err
	}
	popup := v.widget.NewPopup(content)

	// widget events arrive outside the loop
	marker.OnClick(func() {
		v.loop.Post(func() { popup.Open(marker) })
	})
	return nil
}
