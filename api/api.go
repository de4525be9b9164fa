package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/helm-server/api/model"
	"github.com/a-bouts/helm-server/helm"
	"github.com/a-bouts/helm-server/land"
	"github.com/a-bouts/helm-server/wind"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
)

type server struct {
	cpuprofile bool
	h          *helm.Helm
	w          *wind.Winds
	l          *land.Land
}

func InitServer(cpuprofile bool, h *helm.Helm, w *wind.Winds, l *land.Land) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := server{
		cpuprofile: cpuprofile,
		h:          h,
		w:          w,
		l:          l,
	}

	api := router.PathPrefix("/").Subrouter()

	api.HandleFunc("/helm/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/helm/api/v1").Subrouter()
	apiV1.HandleFunc("/tick", s.tick).Methods("POST")
	apiV1.HandleFunc("/course", s.course).Methods("GET")
	apiV1.HandleFunc("/wind/{lat}/{lon}", s.wind).Methods("GET")

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func (s *server) tick(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}

	fields := log.Fields{
		"action": "tick",
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	requestLogger := log.WithFields(fields)

	var tick model.Tick
	if err := json.NewDecoder(req.Body).Decode(&tick); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var forecast helm.Forecast
	if s.w != nil {
		forecast = s.w
	}
	var terrain helm.Terrain
	if s.l != nil {
		terrain = s.l
	}

	start := time.Now()

	instruction := s.h.Decide(tick, forecast, terrain)

	delta := time.Now().Sub(start)
	requestLogger.Debugf("Tick t=%.2f took %s, %d checkpoints to go", tick.T, delta.String(), s.h.Course().Remaining())

	json.NewEncoder(w).Encode(instruction)
}

func (s *server) course(w http.ResponseWriter, req *http.Request) {
	json.NewEncoder(w).Encode(s.h.Course())
}

func (s *server) wind(w http.ResponseWriter, r *http.Request) {
	if s.w == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	lat, err := strconv.ParseFloat(mux.Vars(r)["lat"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(mux.Vars(r)["lon"], 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	type windResult struct {
		Wind  float64 `json:"wind"`
		Speed float64 `json:"speed"`
	}

	var res windResult
	res.Wind, res.Speed = s.w.Forecast(lat, lon, 0)
	res.Speed *= 1.9438444924406

	log.Infof("Wind (%f,%f) : %.1f° %.1f kt", lat, lon, res.Wind, res.Speed)

	json.NewEncoder(w).Encode(res)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
