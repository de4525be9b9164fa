package wind

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"
)

type ForecastWinds []*Wind

func (w ForecastWinds) String() string {
	res := ""
	res += w[0].Date.Format("2006010215") + "(" + w[0].File
	if len(w) > 1 {
		res += "," + w[1].File
	}
	res += ")"
	return res
}

// Winds is the forecast set loaded from a grib-data directory, keyed by
// valid time stamp. New files dropped in the directory are picked up by a
// periodic Merge.
type Winds struct {
	dir   string
	winds map[string]ForecastWinds
	lock  sync.RWMutex
}

func InitWinds(dir string) (*Winds, error) {
	w := &Winds{
		dir:   dir,
		winds: make(map[string]ForecastWinds),
	}

	if err := w.Merge(); err != nil {
		return nil, err
	}

	s := gocron.NewScheduler()
	job := s.Every(15).Seconds()
	job.Do(w.Merge)
	go s.Start()

	return w, nil
}

// Merge reconciles the loaded forecasts with the files currently present in
// the grib directory. Files are named '2006010215.fNNN' : run stamp and
// forecast hour.
func (w *Winds) Merge() error {
	w.lock.Lock()
	defer w.lock.Unlock()

	var toRemove []string
	for k, ws := range w.winds {
		if _, err := os.Stat(filepath.Join(w.dir, ws[0].File)); os.IsNotExist(err) {
			toRemove = append(toRemove, k)
		}
	}
	for _, k := range toRemove {
		log.Infof("Remove from winds %s", k)
		delete(w.winds, k)
	}

	var files []string
	err := filepath.Walk(w.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.WithError(err).Errorf("Error walking file '%s'", path)
			return err
		} else if info.Mode().IsRegular() && !strings.HasSuffix(info.Name(), ".tmp") {
			files = append(files, info.Name())
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Error walking grib files")
		return err
	}

	sort.Strings(files)

	forecasts := make(map[int][]string)

	for cpt, f := range files {

		parts := strings.Split(f, ".")
		if len(parts) != 2 {
			log.Warnf("Ignoring file '%s'", f)
			continue
		}
		d := parts[0]

		h, err := strconv.Atoi(parts[1][1:])
		if err != nil {
			log.WithError(err).Errorf("Error getting hour from file '%s'", f)
			continue
		}
		t, err := time.Parse("2006010215", d)
		if err != nil {
			log.WithError(err).Errorf("Error parsing date '%s'", d)
			continue
		}

		t = t.Add(time.Hour * time.Duration(h))

		forecastHour := int(math.Round(t.Sub(time.Now()).Hours()))

		if forecastHour < -3 && cpt < len(files)-1 {
			continue
		}

		_, found := forecasts[forecastHour]

		// keep the previous run for past hours, prefer the new one ahead
		if !found || forecastHour >= 0 {
			forecasts[forecastHour] = append(forecasts[forecastHour], f)
		}
	}

	var keys []int
	for k := range forecasts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		for _, file := range forecasts[k] {
			d := strings.Split(file, ".")[0]
			date, _ := time.Parse("2006010215", d)
			f, _ := strconv.Atoi(strings.Split(file, ".")[1][1:])
			date = date.Add(time.Hour * time.Duration(f))
			sdate := date.Format("2006010215")

			ws, found := w.winds[sdate]
			if found {
				if len(ws) == 2 || ws[0].File == file {
					continue
				}
			}

			wind, err := Init(date, filepath.Join(w.dir, file), file)
			if err != nil {
				log.WithError(err).Errorf("Error loading grib file '%s'", file)
			} else {
				log.Debugf("Init %s %s", sdate, wind.File)
				w.winds[sdate] = append(w.winds[sdate], &wind)
			}
		}
	}

	return nil
}

// FindWinds returns the forecasts bracketing m and the interpolation ratio
// between them.
func (w *Winds) FindWinds(m time.Time) (ForecastWinds, ForecastWinds, float64) {
	w.lock.RLock()
	defer w.lock.RUnlock()

	if len(w.winds) == 0 {
		return nil, nil, 0
	}

	stamp := m.Format("2006010215")

	keys := make([]string, 0, len(w.winds))
	for k := range w.winds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if keys[0] > stamp {
		return w.winds[keys[0]], nil, 0
	}
	for i := range keys {
		if keys[i] > stamp {
			h := m.Sub(w.winds[keys[i-1]][0].Date).Minutes()
			delta := w.winds[keys[i]][0].Date.Sub(w.winds[keys[i-1]][0].Date).Minutes()
			return w.winds[keys[i-1]], w.winds[keys[i]], h / delta
		}
	}
	return w.winds[keys[len(keys)-1]], nil, 0
}

// Forecast answers the helm query : wind direction in degrees and speed in
// m/s at a position, hours ahead of now. Without any forecast loaded it
// reports a flat calm.
func (w *Winds) Forecast(lat float64, lon float64, hours float64) (float64, float64) {
	w1, w2, h := w.FindWinds(time.Now().Add(time.Duration(hours * float64(time.Hour))))
	if w1 == nil {
		return 0, 0
	}
	return Interpolate(w1, w2, lat, lon, h)
}
