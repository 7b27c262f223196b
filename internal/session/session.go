package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trknhr/housepricer/internal/config"
	"github.com/trknhr/housepricer/internal/dataset"
	"github.com/trknhr/housepricer/internal/feature"
	"github.com/trknhr/housepricer/internal/logger"
	"github.com/trknhr/housepricer/internal/predlog"
	"github.com/trknhr/housepricer/internal/regress"
)

// State is the feature/model status of the session.
type State int

const (
	NoFeaturesSelected State = iota
	FeaturesSelected
	Trained
)

// Session owns all mutable workflow state: the lazily loaded dataset, the
// current feature set, the fitted model, and the prediction history store.
// One session serves one interactive user, synchronously.
type Session struct {
	id  string
	cfg *config.Config

	ds    *dataset.Dataset
	store predlog.Store

	features []string
	model    *regress.Model
	score    float64
	trained  bool

	in  *bufio.Reader
	out io.Writer
	now func() time.Time
}

// New builds a session reading prompts from in and writing to out. The
// default feature set is preselected, matching a fresh start.
func New(cfg *config.Config, in io.Reader, out io.Writer) *Session {
	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		ds:       dataset.New(cfg.DataPath),
		store:    predlog.NewFileStore(cfg.HistoryPath),
		features: append([]string(nil), feature.Defaults...),
		in:       bufio.NewReader(in),
		out:      out,
		now:      time.Now,
	}
	logger.Debug("session %s started (data=%s history=%s)", s.id, cfg.DataPath, cfg.HistoryPath)
	return s
}

// State derives the workflow state from the session fields.
func (s *Session) State() State {
	switch {
	case len(s.features) == 0:
		return NoFeaturesSelected
	case s.trained:
		return Trained
	default:
		return FeaturesSelected
	}
}

func (s *Session) Features() []string { return s.features }
func (s *Session) IsTrained() bool    { return s.trained }
func (s *Session) Score() float64     { return s.score }

// Run drives the menu loop until the user exits. Action failures surface a
// message and return control to the menu; they never end the session.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, renderMenu())
		choice, err := s.readLine("  Enter your choice (1-6): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}

		var actErr error
		switch strings.TrimSpace(choice) {
		case "1":
			actErr = s.ShowInfo()
		case "2":
			actErr = s.SelectFeatures()
		case "3":
			actErr = s.TrainModel()
		case "4":
			actErr = s.PredictPrice()
		case "5":
			actErr = s.ShowHistory()
		case "6":
			fmt.Fprintln(s.out, "\n  Thank you for using House Price Prediction System!")
			fmt.Fprintln(s.out, "  Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "\n"+warnLine("Invalid choice. Please enter a number between 1 and 6."))
			continue
		}

		if actErr != nil {
			if errors.Is(actErr, io.EOF) {
				fmt.Fprintln(s.out, "\n"+warnLine("Input closed. Action cancelled."))
				continue
			}
			logger.Error("session %s: %v", s.id, actErr)
			fmt.Fprintln(s.out, "\n"+warnLine(actErr.Error()))
		}
	}
}

// ShowInfo prints row/column counts, the ordered column list, and the first
// five rows, loading the dataset if this is the first access.
func (s *Session) ShowInfo() error {
	info, err := s.ds.Info()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, header("KC HOUSE DATASET INFORMATION"))
	fmt.Fprintf(s.out, "  Rows    : %d\n", info.RowCount)
	fmt.Fprintf(s.out, "  Columns : %d\n", info.ColCount)
	fmt.Fprintln(s.out, rule("-"))
	fmt.Fprintln(s.out, "  Column Names:")
	for i, col := range info.Columns {
		fmt.Fprintf(s.out, "    %2d. %s\n", i+1, col)
	}
	fmt.Fprintln(s.out, rule("-"))
	fmt.Fprintln(s.out, "  First 5 rows:")
	fmt.Fprint(s.out, headTable(info.Columns, info.Head))
	fmt.Fprintln(s.out, rule("="))
	return nil
}

// SelectFeatures lists the available numeric columns and replaces the
// feature set with the user's validated selection. Any selection, default
// or not, invalidates a previously trained model.
func (s *Session) SelectFeatures() error {
	available, err := s.ds.NumericColumns()
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, header("FEATURE SELECTION"))
	fmt.Fprintln(s.out, "  Available numeric columns:")
	for i, col := range available {
		marker := ""
		if feature.IsDefault(col) {
			marker = " *"
		}
		fmt.Fprintf(s.out, "    %2d. %s%s\n", i+1, col, marker)
	}
	fmt.Fprintln(s.out, "  (* = default feature)")
	fmt.Fprintln(s.out, rule("-"))
	fmt.Fprintln(s.out, "  Enter column numbers separated by commas")
	fmt.Fprintln(s.out, "  (or press Enter to use defaults):")

	raw, err := s.readLine(promptStyle.Render("  >> "))
	if err != nil {
		return err
	}

	sel := feature.Select(available, raw)
	switch sel.Reason {
	case feature.ReasonEmptyInput:
		fmt.Fprintf(s.out, "\n  Using default features (%d selected).\n", len(sel.Features))
	case feature.ReasonParseError:
		logger.Warn("session %s: unparsable feature selection %q, using defaults", s.id, raw)
		fmt.Fprintln(s.out, warnLine("Invalid input — using default features."))
	case feature.ReasonNoneInRange:
		logger.Warn("session %s: no in-range indices in %q, using defaults", s.id, raw)
		fmt.Fprintln(s.out, warnLine("No valid columns selected — falling back to defaults."))
	default:
		fmt.Fprintf(s.out, "\n  Selected features: %s\n", strings.Join(sel.Features, ", "))
	}

	s.features = sel.Features
	s.model = nil
	s.score = 0
	s.trained = false
	fmt.Fprintln(s.out, rule("="))
	return nil
}

// TrainModel fits the model on the current feature set and reports the
// holdout R² to four decimal places.
func (s *Session) TrainModel() error {
	res, err := regress.Train(s.ds, s.features, s.cfg.TestFraction, s.cfg.Seed)
	if err != nil {
		return err
	}
	s.model = res.Model
	s.score = res.Score
	s.trained = true

	fmt.Fprint(s.out, header("MODEL EVALUATION"))
	fmt.Fprintf(s.out, "  Features used : %s\n", strings.Join(s.features, ", "))
	fmt.Fprintf(s.out, "  R-squared     : %.4f\n", s.score)
	fmt.Fprintln(s.out, rule("="))
	return nil
}

// PredictPrice collects one value per feature (re-prompting on bad input),
// runs inference, prints the price, and appends the record to the history
// log. Predicting with no trained model is a no-op with a message.
func (s *Session) PredictPrice() error {
	if !s.trained {
		fmt.Fprintln(s.out, "\n"+warnLine("Model is not trained yet. Please train first."))
		return nil
	}

	fmt.Fprint(s.out, header("PREDICT HOUSE PRICE"))
	fmt.Fprintln(s.out, "  Enter values for each feature:")
	fmt.Fprintln(s.out)

	values := make([]predlog.Pair, 0, len(s.features))
	row := make([]float64, 0, len(s.features))
	for _, feat := range s.features {
		v, err := s.promptFloat(feat)
		if err != nil {
			return err
		}
		values = append(values, predlog.Pair{Name: feat, Value: v})
		row = append(row, v)
	}

	predicted, err := s.model.Predict(row)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, rule("-"))
	fmt.Fprintf(s.out, "  Predicted House Price: %s\n", predlog.FormatPrice(predicted))
	fmt.Fprintln(s.out, rule("="))

	rec := predlog.Record{Timestamp: s.now(), Values: values, Predicted: predicted}
	if err := s.store.Append(rec); err != nil {
		logger.Error("session %s: %v", s.id, err)
		fmt.Fprintln(s.out, warnLine("Could not save prediction: "+err.Error()))
		return nil
	}
	fmt.Fprintln(s.out, okLine("Prediction saved to "+s.cfg.HistoryPath))
	return nil
}

// ShowHistory plays back the prediction log, numbered from 1.
func (s *Session) ShowHistory() error {
	lines, err := s.store.ReadAll()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, header("PREDICTION HISTORY"))
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "  No predictions recorded yet.")
	} else {
		for i, line := range lines {
			fmt.Fprintf(s.out, "  %d. %s\n", i+1, strings.TrimSpace(line))
		}
	}
	fmt.Fprintln(s.out, rule("="))
	return nil
}

// promptFloat keeps asking until the input parses as a number. There is no
// retry limit; only a closed input stream ends the loop.
func (s *Session) promptFloat(name string) (float64, error) {
	for {
		line, err := s.readLine(fmt.Sprintf("    %s: ", name))
		if err != nil {
			return 0, err
		}
		v, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if perr != nil {
			fmt.Fprintln(s.out, "    Please enter a valid number.")
			continue
		}
		return v, nil
	}
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			// final unterminated line still counts as input
			return line, nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
