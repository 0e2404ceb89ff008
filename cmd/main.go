package main

import (
	"context"
	"fmt"
	"strings"

	"clinica-agenda/cmd/bootstrap"
	"clinica-agenda/internal/domain/entity"
	"clinica-agenda/pkg/dateutil"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// The CLI is a stand-in for the out-of-scope admin UI: each subcommand drives
// the same ScheduleSession the UI would.
func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	root := &cobra.Command{
		Use:           "clinica-agenda",
		Short:         "Batch creation and capacity engine for medical schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newListCmd(app),
		newPreviewCmd(app),
		newCreateCmd(app),
		newUpdateCmd(app),
		newDeactivateCmd(app),
	)

	if err := root.Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func newListCmd(app *bootstrap.App) *cobra.Command {
	var (
		estado, desde, hasta, query string
		page                        int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedules (paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := app.Session
			session.SetFilter(entity.ScheduleFilter{
				Status: entity.ScheduleStatus(strings.ToUpper(estado)),
				From:   desde,
				To:     hasta,
				Query:  query,
			})
			session.SetPage(page)
			if err := session.RefreshList(context.Background()); err != nil {
				return err
			}
			meta := session.Meta()
			fmt.Printf("Página %d/%d (%d en total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
			for _, row := range session.Rows() {
				fmt.Printf("%4d  %s  %s  %-10s %-12s cupos=%d  %s / %s\n",
					row.ID, row.Code, dateutil.Format(row.Date), row.Type, row.Status,
					row.Slots, row.Doctor.Label, row.Shift.Label)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&estado, "estado", "", "filter by status (ACTIVO|INACTIVO|SUSPENDIDO)")
	cmd.Flags().StringVar(&desde, "desde", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&hasta, "hasta", "", "end date YYYY-MM-DD")
	cmd.Flags().StringVar(&query, "q", "", "free-text query")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

type dateFlags struct {
	modo   string
	fecha  string
	fechas []string
	desde  string
	hasta  string
}

func (f *dateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.modo, "modo", "diario", "selection mode (diario|aleatorio|rango)")
	cmd.Flags().StringVar(&f.fecha, "fecha", "", "date for modo=diario, YYYY-MM-DD")
	cmd.Flags().StringSliceVar(&f.fechas, "fechas", nil, "dates for modo=aleatorio")
	cmd.Flags().StringVar(&f.desde, "desde", "", "range start for modo=rango")
	cmd.Flags().StringVar(&f.hasta, "hasta", "", "range end for modo=rango")
}

// apply replays the flag values as the calendar interactions the UI would
// perform, so the draft goes through the same transitions.
func (f *dateFlags) apply(ctx context.Context, app *bootstrap.App) error {
	session := app.Session
	switch f.modo {
	case "diario":
		session.SetMode(ctx, entity.ModeDaily)
		if f.fecha != "" {
			day, err := dateutil.Parse(f.fecha)
			if err != nil {
				return fmt.Errorf("invalid --fecha: %w", err)
			}
			session.PickDaily(ctx, day)
		}
	case "aleatorio":
		session.SetMode(ctx, entity.ModeRandom)
		for _, raw := range f.fechas {
			day, err := dateutil.Parse(raw)
			if err != nil {
				return fmt.Errorf("invalid --fechas entry %q: %w", raw, err)
			}
			session.ToggleRandom(ctx, day)
		}
	case "rango":
		session.SetMode(ctx, entity.ModeRange)
		for _, raw := range []string{f.desde, f.hasta} {
			if raw == "" {
				continue
			}
			day, err := dateutil.Parse(raw)
			if err != nil {
				return fmt.Errorf("invalid range bound %q: %w", raw, err)
			}
			session.PickRange(ctx, day)
		}
	default:
		return fmt.Errorf("unknown --modo %q", f.modo)
	}
	return nil
}

func newPreviewCmd(app *bootstrap.App) *cobra.Command {
	flags := &dateFlags{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the codes a create batch would receive",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := flags.apply(ctx, app); err != nil {
				return err
			}
			session := app.Session
			batch := session.Preview()
			fmt.Printf("Fechas: %d  Códigos: %s\n", len(session.Draft().ResolveBatch()), batch.Display)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

type fieldFlags struct {
	medico, especialidad, consultorio, turno int
	tipo, estado                             string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.medico, "medico", 0, "doctor id")
	cmd.Flags().IntVar(&f.especialidad, "especialidad", 0, "specialty id")
	cmd.Flags().IntVar(&f.consultorio, "consultorio", 0, "office id")
	cmd.Flags().IntVar(&f.turno, "turno", 0, "shift id")
	cmd.Flags().StringVar(&f.tipo, "tipo", string(entity.TypeNormal), "schedule type (NORMAL|EXTRAORDINARIA)")
	cmd.Flags().StringVar(&f.estado, "estado", string(entity.StatusActive), "status (ACTIVO|INACTIVO|SUSPENDIDO)")
}

func (f *fieldFlags) apply(ctx context.Context, app *bootstrap.App) {
	session := app.Session
	session.SetDoctor(ctx, f.medico)
	session.SetSpecialty(f.especialidad)
	session.SetOffice(f.consultorio)
	session.SetShift(ctx, f.turno)
	session.SetType(entity.CoerceType(strings.ToUpper(f.tipo)))
	session.SetStatus(entity.CoerceStatus(strings.ToUpper(f.estado)))
}

// applyChanged only applies flags the user actually set, so an update keeps
// the loaded record's values for everything else.
func (f *fieldFlags) applyChanged(ctx context.Context, app *bootstrap.App, cmd *cobra.Command) {
	session := app.Session
	if cmd.Flags().Changed("medico") {
		session.SetDoctor(ctx, f.medico)
	}
	if cmd.Flags().Changed("especialidad") {
		session.SetSpecialty(f.especialidad)
	}
	if cmd.Flags().Changed("consultorio") {
		session.SetOffice(f.consultorio)
	}
	if cmd.Flags().Changed("turno") {
		session.SetShift(ctx, f.turno)
	}
	if cmd.Flags().Changed("tipo") {
		session.SetType(entity.CoerceType(strings.ToUpper(f.tipo)))
	}
	if cmd.Flags().Changed("estado") {
		session.SetStatus(entity.CoerceStatus(strings.ToUpper(f.estado)))
	}
}

func newCreateCmd(app *bootstrap.App) *cobra.Command {
	dates := &dateFlags{}
	fields := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a schedule batch (one record per resolved date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session := app.Session
			session.LoadLookups(ctx)
			if err := dates.apply(ctx, app); err != nil {
				return err
			}
			fields.apply(ctx, app)

			fmt.Printf("Cupos: %d  Códigos previstos: %s\n", session.Draft().Slots, session.Preview().Display)
			if !session.CanSave() {
				return fmt.Errorf("draft is not submittable: %v", noticeText(app))
			}
			if err := session.Save(ctx); err != nil {
				return fmt.Errorf("%s", noticeText(app))
			}
			if selected := session.Selected(); selected != nil {
				fmt.Printf("Creado: id=%d codigo=%s fecha=%s\n", selected.ID, selected.Code, dateutil.Format(selected.Date))
			}
			return nil
		},
	}
	dates.register(cmd)
	fields.register(cmd)
	return cmd
}

func newUpdateCmd(app *bootstrap.App) *cobra.Command {
	var id, page int
	var fecha string
	fields := &fieldFlags{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update one schedule (full field set)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session := app.Session
			if err := selectRecord(ctx, app, id, page); err != nil {
				return err
			}
			if fecha != "" {
				day, err := dateutil.Parse(fecha)
				if err != nil {
					return fmt.Errorf("invalid --fecha: %w", err)
				}
				session.PickDaily(ctx, day)
			}
			fields.applyChanged(ctx, app, cmd)
			if !session.CanSave() {
				return fmt.Errorf("nothing to save or draft invalid")
			}
			if err := session.Save(ctx); err != nil {
				return fmt.Errorf("%s", noticeText(app))
			}
			fmt.Printf("Actualizado: id=%d\n", id)
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "schedule id")
	cmd.Flags().IntVar(&page, "page", 1, "list page holding the record")
	cmd.Flags().StringVar(&fecha, "fecha", "", "new date YYYY-MM-DD")
	fields.register(cmd)
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newDeactivateCmd(app *bootstrap.App) *cobra.Command {
	var id, page int
	var confirm bool
	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "Deactivate one schedule (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session := app.Session
			if err := selectRecord(ctx, app, id, page); err != nil {
				return err
			}
			if !session.RequestDeactivate() {
				return fmt.Errorf("schedule %d is already inactive", id)
			}
			if !confirm {
				session.DismissDeactivate()
				return fmt.Errorf("re-run with --confirm to deactivate schedule %d", id)
			}
			if err := session.ConfirmDeactivate(ctx); err != nil {
				return fmt.Errorf("%s", noticeText(app))
			}
			fmt.Printf("Desactivado: id=%d\n", id)
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "schedule id")
	cmd.Flags().IntVar(&page, "page", 1, "list page holding the record")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm the deactivation")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func selectRecord(ctx context.Context, app *bootstrap.App, id, page int) error {
	session := app.Session
	session.SetPage(page)
	if err := session.RefreshList(ctx); err != nil {
		return err
	}
	if err := session.Select(id); err != nil {
		return fmt.Errorf("schedule %d not found on page %d", id, page)
	}
	return nil
}

func noticeText(app *bootstrap.App) string {
	if notice := app.Session.Notice(); notice != nil {
		return notice.Text
	}
	return "unknown error"
}
