// Command coordconv converts coordinate rows between geographic and
// cartesian form against a reference sphere. It reads CSV rows from stdin
// (lat,lon[,alt] by default, x,y,z with -reverse) and writes one converted
// row per line to stdout.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/HectorMRC/geocart"
)

func init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
}

func main() {
	radius := flag.Float64("radius", geocart.EarthRadius, "radius of the reference sphere in meters")
	reverse := flag.Bool("reverse", false, "convert cartesian x,y,z rows back to geographic")
	precision := flag.Int("precision", 4, "number of decimal places in converted values")
	flag.Parse()

	sphere, err := geocart.NewSphere(*radius)
	if err != nil {
		log.Fatalln(err)
	}

	r := csv.NewReader(os.Stdin)
	r.FieldsPerRecord = -1
	for i := 0; ; i++ {
		rs, err := r.Read()
		if rs == nil && err == io.EOF {
			break
		}
		if err != nil && err != io.EOF {
			log.Fatalln(err)
		}
		if *reverse {
			c, err := parseCartesian(rs)
			if err != nil {
				log.Fatalf("row %d: %v", i, err)
			}
			g, err := sphere.ToGeographic(c)
			if err != nil {
				log.Fatalf("row %d: %v", i, err)
			}
			log.Printf("%6d | %14.*f | %14.*f | %14.*f",
				i, *precision, g.Latitude(), *precision, g.Longitude(), *precision, g.Altitude())
			continue
		}
		g, err := parseGeographic(rs)
		if err != nil {
			log.Fatalf("row %d: %v", i, err)
		}
		c := sphere.ToCartesian(g)
		log.Printf("%6d | %16.*f | %16.*f | %16.*f", i, *precision, c.X, *precision, c.Y, *precision, c.Z)
	}
}

// parseGeographic reads a lat,lon[,alt] row; a missing altitude field means
// the point lies on the surface.
func parseGeographic(rs []string) (geocart.Geographic, error) {
	var (
		lat, lon, alt float64
		err           error
	)
	if len(rs) < 2 {
		return geocart.Geographic{}, fmt.Errorf("expected lat,lon[,alt] fields, got %d", len(rs))
	}
	if lat, err = strconv.ParseFloat(rs[0], 64); err != nil {
		return geocart.Geographic{}, err
	}
	if lon, err = strconv.ParseFloat(rs[1], 64); err != nil {
		return geocart.Geographic{}, err
	}
	if len(rs) > 2 {
		if alt, err = strconv.ParseFloat(rs[2], 64); err != nil {
			return geocart.Geographic{}, err
		}
	}
	return geocart.NewGeographic(lat, lon, alt)
}

func parseCartesian(rs []string) (geocart.Cartesian, error) {
	var (
		x, y, z float64
		err     error
	)
	if len(rs) < 3 {
		return geocart.Cartesian{}, fmt.Errorf("expected x,y,z fields, got %d", len(rs))
	}
	if x, err = strconv.ParseFloat(rs[0], 64); err != nil {
		return geocart.Cartesian{}, err
	}
	if y, err = strconv.ParseFloat(rs[1], 64); err != nil {
		return geocart.Cartesian{}, err
	}
	if z, err = strconv.ParseFloat(rs[2], 64); err != nil {
		return geocart.Cartesian{}, err
	}
	return geocart.NewCartesian(x, y, z)
}
