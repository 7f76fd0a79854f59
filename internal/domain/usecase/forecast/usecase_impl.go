package forecast

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/gateway/api"
	"abohawa-api/internal/domain/gateway/db"
	"abohawa-api/internal/domain/indicator"
	"abohawa-api/internal/domain/model/external"
	"abohawa-api/internal/observability"
	"abohawa-api/pkg/bus"
	"abohawa-api/pkg/log"
	"abohawa-api/pkg/msg"
)

const (
	maxForecastDays = 5
	maxHourlyPoints = 24

	triggerAPI         = "api"
	triggerGeolocation = "geolocation"
	triggerSchedule    = "schedule"
)

// fetchResult carries the five joined endpoint payloads of one cycle.
type fetchResult struct {
	current      *external.CurrentWeatherResponse
	forecast     *external.ForecastResponse
	hourly       *external.ForecastResponse
	airPollution *external.AirPollutionResponse
	uv           *external.UVForecastResponse
}

type forecastUseCase struct {
	apiGateway     api.WeatherGateway
	geoGateway     api.GeoGateway
	historyGateway db.HistoryGateway
	alertBus       *bus.Bus[entity.AlertEvent]
	metrics        *observability.Metrics
	clock          clockwork.Clock

	mu       sync.RWMutex
	snapshot *entity.WeatherSnapshot
	status   Status
	targetID string
}

// NewForecastUseCase builds the orchestrator. historyGateway may be nil when
// no history store is configured; appends are then skipped.
func NewForecastUseCase(
	apiGateway api.WeatherGateway,
	geoGateway api.GeoGateway,
	historyGateway db.HistoryGateway,
	alertBus *bus.Bus[entity.AlertEvent],
	metrics *observability.Metrics,
	clock clockwork.Clock,
) ForecastUseCase {
	return &forecastUseCase{
		apiGateway:     apiGateway,
		geoGateway:     geoGateway,
		historyGateway: historyGateway,
		alertBus:       alertBus,
		metrics:        metrics,
		clock:          clock,
		status:         StatusIdle,
	}
}

func (uc *forecastUseCase) Refresh(ctx context.Context, location entity.Location) (*entity.WeatherSnapshot, error) {
	return uc.refresh(ctx, location, triggerAPI)
}

func (uc *forecastUseCase) RefreshByGeolocation(ctx context.Context) (*entity.WeatherSnapshot, error) {
	coords, err := uc.geoGateway.Locate()
	if err != nil {
		uc.publishAlert("geolocation.error.unresolved", entity.AlertError)
		return nil, fmt.Errorf("failed to resolve geolocation: %w", err)
	}

	location := entity.NewLocation(
		msg.GetLocalized("geolocation.current-location"),
		coords.Lat, coords.Lon, "", "")
	return uc.refresh(ctx, location, triggerGeolocation)
}

func (uc *forecastUseCase) RefreshActive(ctx context.Context) (*entity.WeatherSnapshot, error) {
	uc.mu.RLock()
	snapshot := uc.snapshot
	uc.mu.RUnlock()

	if snapshot == nil {
		return nil, ErrNoActiveLocation
	}
	return uc.refresh(ctx, snapshot.Location, triggerSchedule)
}

func (uc *forecastUseCase) Snapshot() *entity.WeatherSnapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snapshot
}

func (uc *forecastUseCase) Status() Status {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.status
}

// refresh runs one full cycle. The location requested last is the only one
// allowed to commit: any cycle that finishes after its target was replaced
// discards its result without touching snapshot or status.
func (uc *forecastUseCase) refresh(ctx context.Context, location entity.Location, trigger string) (*entity.WeatherSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.targetID = location.ID
	uc.status = StatusLoading
	uc.mu.Unlock()

	started := uc.clock.Now()
	result, err := uc.fetchAllInParallel(location)
	uc.metrics.RefreshDuration.Observe(uc.clock.Since(started).Seconds())

	uc.mu.Lock()
	if uc.targetID != location.ID {
		uc.mu.Unlock()
		uc.metrics.RefreshCycles.WithLabelValues(trigger, "discarded").Inc()
		log.Infof("Discarding refresh for %s: superseded by a newer location", location.ID)
		return nil, ErrSuperseded
	}

	if err != nil {
		uc.status = StatusError
		uc.mu.Unlock()
		uc.metrics.RefreshCycles.WithLabelValues(trigger, "failure").Inc()
		uc.publishAlert("weather.error.refresh-failed", entity.AlertWarning)
		log.Errorf("Refresh cycle failed for %s: %v", location.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	snapshot := uc.buildSnapshot(location, result)
	uc.snapshot = snapshot
	uc.status = StatusSuccess
	uc.mu.Unlock()

	uc.metrics.RefreshCycles.WithLabelValues(trigger, "success").Inc()
	uc.appendHistory(snapshot)
	log.Infof("Refresh cycle committed for %s (%s)", snapshot.Location.Name, snapshot.Location.ID)
	return snapshot, nil
}

// fetchAllInParallel retrieves the five endpoint payloads concurrently and
// joins them all-or-nothing: the first error reported wins and the partial
// payloads are dropped.
func (uc *forecastUseCase) fetchAllInParallel(location entity.Location) (*fetchResult, error) {
	var wg sync.WaitGroup
	var result fetchResult
	var currentErr, forecastErr, hourlyErr, airErr, uvErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.current, currentErr = uc.apiGateway.CurrentConditions(location.Lat, location.Lon)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.forecast, forecastErr = uc.apiGateway.Forecast(location.Lat, location.Lon)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.hourly, hourlyErr = uc.apiGateway.HourlyForecast(location.Lat, location.Lon)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.airPollution, airErr = uc.apiGateway.AirPollution(location.Lat, location.Lon)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.uv, uvErr = uc.apiGateway.UVForecast(location.Lat, location.Lon)
	}()

	wg.Wait()

	if currentErr != nil {
		return nil, fmt.Errorf("failed to fetch current conditions: %w", currentErr)
	}
	if forecastErr != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", forecastErr)
	}
	if hourlyErr != nil {
		return nil, fmt.Errorf("failed to fetch hourly forecast: %w", hourlyErr)
	}
	if airErr != nil {
		return nil, fmt.Errorf("failed to fetch air pollution: %w", airErr)
	}
	if uvErr != nil {
		return nil, fmt.Errorf("failed to fetch uv forecast: %w", uvErr)
	}

	return &result, nil
}

// buildSnapshot merges the five payloads into one immutable snapshot with
// its derived indicators annotated.
func (uc *forecastUseCase) buildSnapshot(location entity.Location, result *fetchResult) *entity.WeatherSnapshot {
	now := uc.clock.Now()

	if location.Name == "" {
		location = entity.NewLocation(
			result.current.Name, location.Lat, location.Lon,
			result.current.Sys.Country, location.State)
	}

	current := convertCurrent(result.current)
	aqi := result.airPollution.AQIOrZero()
	uv := result.uv.PeakOrZero()

	fraction, phase := indicator.DayProgress(current.Sunrise, current.Sunset, now)
	indicators := entity.Indicators{
		AQI:           indicator.ClassifyAQI(aqi),
		AQIBadge:      indicator.BadgeForAQI(aqi),
		UV:            indicator.ClassifyUV(uv),
		Wind:          indicator.WindDirection(current.WindDegrees),
		PressureTrend: indicator.PressureTrend(current.Pressure, nil),
		DayFraction:   fraction,
		DayPhase:      phase,
	}

	return &entity.WeatherSnapshot{
		Location:   location,
		Current:    current,
		Forecast:   aggregateDailyForecast(result.forecast),
		Hourly:     convertHourly(result.hourly),
		AirQuality: aqi,
		UVIndex:    uv,
		Indicators: indicators,
		FetchedAt:  now,
	}
}

func convertCurrent(response *external.CurrentWeatherResponse) entity.CurrentConditions {
	condition := response.Condition()
	return entity.CurrentConditions{
		Temperature:   response.Main.Temp,
		FeelsLike:     response.Main.FeelsLike,
		TempMin:       response.Main.TempMin,
		TempMax:       response.Main.TempMax,
		Humidity:      response.Main.Humidity,
		Pressure:      response.Main.Pressure,
		WindSpeed:     response.Wind.Speed,
		WindDegrees:   response.Wind.Deg,
		Visibility:    response.Visibility,
		Cloudiness:    response.Clouds.All,
		Condition:     condition.Main,
		ConditionDesc: condition.Description,
		Icon:          condition.Icon,
		Sunrise:       time.Unix(response.Sys.Sunrise, 0).UTC(),
		Sunset:        time.Unix(response.Sys.Sunset, 0).UTC(),
		ObservedAt:    time.Unix(response.Dt, 0).UTC(),
	}
}

// aggregateDailyForecast folds the provider's three-hourly steps into per-day
// min/max periods, capped at five days. The midday step names the day's
// condition; days without one fall back to their first step.
func aggregateDailyForecast(response *external.ForecastResponse) []entity.ForecastPeriod {
	type dayAggregate struct {
		period entity.ForecastPeriod
		midday bool
	}

	days := make(map[string]*dayAggregate)
	order := make([]string, 0, maxForecastDays)

	for i := range response.List {
		step := &response.List[i]
		at := time.Unix(step.Dt, 0).UTC()
		day := at.Format("2006-01-02")

		aggregate, seen := days[day]
		if !seen {
			condition := step.Condition()
			days[day] = &dayAggregate{period: entity.ForecastPeriod{
				Day:           day,
				TempMin:       step.Main.TempMin,
				TempMax:       step.Main.TempMax,
				Condition:     condition.Main,
				ConditionDesc: condition.Description,
				Icon:          condition.Icon,
			}}
			order = append(order, day)
			aggregate = days[day]
		}

		if step.Main.TempMin < aggregate.period.TempMin {
			aggregate.period.TempMin = step.Main.TempMin
		}
		if step.Main.TempMax > aggregate.period.TempMax {
			aggregate.period.TempMax = step.Main.TempMax
		}
		if !aggregate.midday && at.Hour() == 12 {
			condition := step.Condition()
			aggregate.period.Condition = condition.Main
			aggregate.period.ConditionDesc = condition.Description
			aggregate.period.Icon = condition.Icon
			aggregate.midday = true
		}
	}

	sort.Strings(order)
	if len(order) > maxForecastDays {
		order = order[:maxForecastDays]
	}

	periods := make([]entity.ForecastPeriod, 0, len(order))
	for _, day := range order {
		periods = append(periods, days[day].period)
	}
	return periods
}

// convertHourly keeps the first 24 three-hourly steps as the hour-level series.
func convertHourly(response *external.ForecastResponse) []entity.HourlyPoint {
	limit := len(response.List)
	if limit > maxHourlyPoints {
		limit = maxHourlyPoints
	}

	points := make([]entity.HourlyPoint, 0, limit)
	for i := 0; i < limit; i++ {
		step := &response.List[i]
		condition := step.Condition()
		points = append(points, entity.HourlyPoint{
			At:          time.Unix(step.Dt, 0).UTC(),
			Temperature: step.Main.Temp,
			Humidity:    step.Main.Humidity,
			WindSpeed:   step.Wind.Speed,
			Condition:   condition.Main,
			Icon:        condition.Icon,
		})
	}
	return points
}

// appendHistory upserts one temperature record per forecast day. The append
// is best effort: a storage failure is logged and counted, never surfaced.
func (uc *forecastUseCase) appendHistory(snapshot *entity.WeatherSnapshot) {
	if uc.historyGateway == nil || len(snapshot.Forecast) == 0 {
		return
	}

	records := make([]entity.TemperatureRecord, 0, len(snapshot.Forecast))
	for _, period := range snapshot.Forecast {
		records = append(records, entity.TemperatureRecord{
			LocationID: snapshot.Location.ID,
			Day:        period.Day,
			TempMin:    period.TempMin,
			TempMax:    period.TempMax,
			RecordedAt: snapshot.FetchedAt,
		})
	}

	if err := uc.historyGateway.UpsertRecords(records); err != nil {
		uc.metrics.HistoryAppendErr.Inc()
		log.Warnf("Failed to append temperature history for %s: %v", snapshot.Location.ID, err)
	}
}

func (uc *forecastUseCase) publishAlert(messageKey string, kind entity.AlertKind) {
	event := entity.NewAlertEvent(messageKey, msg.GetLocalized(messageKey), kind, uc.clock.Now())
	uc.metrics.AlertsPublished.WithLabelValues(string(kind)).Inc()
	uc.alertBus.Publish(event)
}
