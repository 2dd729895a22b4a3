package catalog_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Mhd-Shakir/carlet/models"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadCarBrochure godoc
// @Summary Download car spec sheet PDF
// @Description Generate and download a printable brochure for the listing
// @Tags Catalog
// @Produce octet-stream
// @Param id path string true "Car ID"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Car not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /cars/{id}/brochure [get]
func DownloadCarBrochure(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[catalog.brochure] request for car: %s", id)

	car, ok := cat.ByID(id)
	if !ok {
		log.Printf("[catalog.brochure] car not found: %s", id)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found — browse all cars at /cars"))
		return
	}

	pdfBuffer, err := generateCarBrochurePDF(car)
	if err != nil {
		log.Printf("[catalog.brochure] pdf generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate brochure"))
		return
	}

	filename := fmt.Sprintf("carlet-%s.pdf", strings.ReplaceAll(strings.ToLower(car.Make+"-"+car.Model), " ", "-"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[catalog.brochure] brochure downloaded for car %s", id)
}

// generateCarBrochurePDF builds the spec sheet in memory.
func generateCarBrochurePDF(car models.Car) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text(car.Title, props.Text{
				Size:  22,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("£%d", car.Price), props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			if savings := car.Savings(); savings > 0 {
				m.Text(fmt.Sprintf("Save £%d off list price", savings), props.Text{
					Size:  10,
					Color: mediumGray,
					Align: consts.Right,
				})
			}
		})
	})

	m.Row(8, func() {})

	// Key specs, two columns per row
	specs := [][2]string{
		{"Make", car.Make},
		{"Model", car.Model},
		{"Year", fmt.Sprintf("%d", car.Year)},
		{"Mileage", fmt.Sprintf("%d miles", car.Mileage)},
		{"Fuel", car.FuelType},
		{"Transmission", car.Transmission},
		{"Body", car.BodyType},
		{"Colour", car.Color},
		{"Condition", car.Condition},
		{"Owners", fmt.Sprintf("%d", car.Owners)},
		{"Registered", fmt.Sprintf("%d", car.RegistrationYear)},
		{"Location", car.Location},
	}
	for i := 0; i < len(specs); i += 2 {
		row := specs[i : i+2]
		m.Row(6, func() {
			for _, spec := range row {
				label, value := spec[0], spec[1]
				m.Col(2, func() {
					m.Text(strings.ToUpper(label), props.Text{
						Size:  8,
						Style: consts.Bold,
						Color: mediumGray,
					})
				})
				m.Col(4, func() {
					m.Text(value, props.Text{
						Size:  9,
						Color: darkGray,
					})
				})
			}
		})
	}

	m.Row(8, func() {})

	// Description
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("ABOUT THIS CAR", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(car.Description, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	// Features
	if len(car.Features) > 0 {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text("FEATURES", props.Text{
					Size:  8,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(strings.Join(car.Features, "  •  "), props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Dealer contact
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(car.Dealer.Name, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s | %s | %s", car.Dealer.Phone, car.Dealer.Email, car.Dealer.Address), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
