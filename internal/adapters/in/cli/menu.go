package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

// errMalformedInput marks a line that could not be parsed as the expected
// type. The offending line is already consumed; the operation is abandoned
// without touching the registry.
var errMalformedInput = errors.New("malformed input")

// Handlers carries the command and query handlers the menu dispatches to.
type Handlers struct {
	RegisterParcel     commands.RegisterParcelCommandHandler
	UpdateParcelWeight commands.UpdateParcelWeightCommandHandler
	LoadParcel         commands.LoadParcelCommandHandler
	DispatchParcel     commands.DispatchParcelCommandHandler
	CompleteDelivery   commands.CompleteDeliveryCommandHandler
	UndoAction         commands.UndoActionCommandHandler
	GetSummaryReport   queries.GetSummaryReportQueryHandler
}

// Menu is the interactive boundary: a line-oriented loop over an injected
// reader and writer, so tests can script a full session.
type Menu struct {
	reader   *bufio.Reader
	out      io.Writer
	logger   *slog.Logger
	styles   Styles
	prompt   string
	handlers Handlers
}

// NewMenu creates the interactive menu. The prompt is printed before each
// choice line.
func NewMenu(
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
	styles Styles,
	prompt string,
	handlers Handlers,
) *Menu {
	return &Menu{
		reader:   bufio.NewReader(in),
		out:      out,
		logger:   logger,
		styles:   styles,
		prompt:   prompt,
		handlers: handlers,
	}
}

// Run executes the menu loop until the user chooses to exit or input ends.
// Malformed input never terminates the loop; only an I/O failure on the
// reader does.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, err := m.readInt(m.prompt)
		if errors.Is(err, errMalformedInput) {
			m.printError("Invalid input type. Please enter a number.")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == 0 {
			fmt.Fprintln(m.out, "Exiting parcel registry. Goodbye!")
			return nil
		}

		if err = m.dispatchChoice(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) dispatchChoice(ctx context.Context, choice int) error {
	switch choice {
	case 1:
		return m.runRegister(ctx)
	case 2:
		return m.runUpdateWeight(ctx)
	case 3:
		return m.runLoad(ctx)
	case 4:
		return m.runDispatch(ctx)
	case 5:
		return m.runCompleteDelivery(ctx)
	case 6:
		return m.runUndo(ctx)
	case 7:
		return m.runSummaryReport(ctx)
	default:
		m.printError("Invalid choice. Please try again (0-7).")
		return nil
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Title.Render("======================================="))
	fmt.Fprintln(m.out, m.styles.Title.Render("PARCEL REGISTRY MANAGEMENT SYSTEM"))
	fmt.Fprintln(m.out, m.styles.Title.Render("======================================="))
	fmt.Fprintln(m.out, m.styles.Menu.Render("1. Register New Parcel"))
	fmt.Fprintln(m.out, m.styles.Menu.Render("2. Update Parcel Weight"))
	fmt.Fprintln(m.out, m.styles.Menu.Render("3. Prepare for Loading"))
	fmt.Fprintln(m.out, m.styles.Menu.Render("4. Dispatch Next Parcel"))
	fmt.Fprintln(m.out, m.styles.Menu.Render("5. Complete Delivery"))
	fmt.Fprintln(m.out, m.styles.Menu.Render("6. Undo Last Action"))
	fmt.Fprintln(m.out, m.styles.Menu.Render("7. Generate Summary Report"))
	fmt.Fprintln(m.out, m.styles.Menu.Render("0. Exit Program"))
}

func (m *Menu) runRegister(ctx context.Context) error {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Title.Render("--- Register New Parcel ---"))

	id, err := m.readInt("Enter Parcel ID: ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid ID.")
		return nil
	}
	if err != nil {
		return err
	}

	sender, err := m.readString("Enter Sender Name: ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid input.")
		return nil
	}
	if err != nil {
		return err
	}

	recipient, err := m.readString("Enter Recipient Name: ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid input.")
		return nil
	}
	if err != nil {
		return err
	}

	address, err := m.readString("Enter Address: ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid input.")
		return nil
	}
	if err != nil {
		return err
	}

	weight, err := m.readFloat("Enter Weight (kg): ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid weight.")
		return nil
	}
	if err != nil {
		return err
	}

	priorityValue, err := m.readInt("Enter Delivery Priority (1=High, 5=Low): ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid priority. Must be between 1 and 5.")
		return nil
	}
	if err != nil {
		return err
	}

	priority, err := kernel.NewPriority(priorityValue)
	if err != nil {
		m.printError("Invalid priority. Must be between 1 and 5.")
		return nil
	}

	cmd, err := commands.NewRegisterParcelCommand(id, sender, recipient, address, weight, priority)
	if err != nil {
		m.printError(fmt.Sprintf("Invalid parcel data: %v.", err))
		return nil
	}

	if err = m.handlers.RegisterParcel.Handle(ctx, cmd); err != nil {
		m.printError(fmt.Sprintf("Registration failed: %v.", err))
		return nil
	}

	m.logger.InfoContext(ctx, "parcel registered", "parcelID", id)
	m.printSuccess(fmt.Sprintf("SUCCESS: Parcel %d registered and recorded for undo.", id))
	return nil
}

func (m *Menu) runUpdateWeight(ctx context.Context) error {
	id, err := m.readInt("\nEnter Parcel ID to Update: ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid input.")
		return nil
	}
	if err != nil {
		return err
	}

	newWeight, err := m.readFloat(fmt.Sprintf("Enter New Weight for P%d: ", id))
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid input.")
		return nil
	}
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateParcelWeightCommand(id, newWeight)
	if err != nil {
		m.printError(fmt.Sprintf("Invalid update request: %v.", err))
		return nil
	}

	if err = m.handlers.UpdateParcelWeight.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			m.printError(fmt.Sprintf("Error: Parcel ID %d not found in active records.", id))
			return nil
		}
		m.printError(fmt.Sprintf("Update failed: %v.", err))
		return nil
	}

	m.logger.InfoContext(ctx, "parcel weight updated", "parcelID", id, "newWeight", newWeight)
	m.printSuccess(fmt.Sprintf("SUCCESS: Parcel %d updated.", id))
	return nil
}

func (m *Menu) runLoad(ctx context.Context) error {
	id, err := m.readInt("\nEnter Parcel ID to Load onto truck: ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid input.")
		return nil
	}
	if err != nil {
		return err
	}

	cmd, err := commands.NewLoadParcelCommand(id)
	if err != nil {
		m.printError(fmt.Sprintf("Invalid load request: %v.", err))
		return nil
	}

	if err = m.handlers.LoadParcel.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			m.printError(fmt.Sprintf("Error: Parcel ID %d not found.", id))
			return nil
		}
		m.printError(fmt.Sprintf("Load failed: %v.", err))
		return nil
	}

	m.logger.InfoContext(ctx, "parcel loaded", "parcelID", id)
	m.printSuccess(fmt.Sprintf("SUCCESS: Parcel %d loaded. Will be dispatched based on urgency.", id))
	return nil
}

func (m *Menu) runDispatch(ctx context.Context) error {
	response, err := m.handlers.DispatchParcel.Handle(ctx, commands.NewDispatchParcelCommand())
	if err != nil {
		if errors.Is(err, errs.ErrCollectionIsEmpty) {
			m.printError("ERROR: Loading queue is empty. (Underflow)")
			return nil
		}
		m.printError(fmt.Sprintf("Dispatch failed: %v.", err))
		return nil
	}

	m.logger.InfoContext(ctx, "parcel dispatched", "parcelID", response.ParcelID)
	m.printSuccess(fmt.Sprintf(
		"DISPATCH SUCCESS: Parcel ID %d (Priority %d) dispatched immediately.",
		response.ParcelID, response.Priority.Value(),
	))
	return nil
}

func (m *Menu) runCompleteDelivery(ctx context.Context) error {
	id, err := m.readInt("\nEnter Parcel ID to mark as delivered: ")
	if errors.Is(err, errMalformedInput) {
		m.printError("Invalid input.")
		return nil
	}
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id)
	if err != nil {
		m.printError(fmt.Sprintf("Invalid delivery request: %v.", err))
		return nil
	}

	if err = m.handlers.CompleteDelivery.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			m.printError(fmt.Sprintf("Error: Parcel ID %d not found in active list.", id))
			return nil
		}
		m.printError(fmt.Sprintf("Delivery failed: %v.", err))
		return nil
	}

	m.logger.InfoContext(ctx, "delivery completed", "parcelID", id)
	m.printSuccess(fmt.Sprintf("SUCCESS: Parcel %d marked delivered and removed from active list.", id))
	return nil
}

func (m *Menu) runUndo(ctx context.Context) error {
	response, err := m.handlers.UndoAction.Handle(ctx, commands.NewUndoActionCommand())
	if err != nil {
		if errors.Is(err, errs.ErrCollectionIsEmpty) {
			m.printError("NO UNDO: Stack is empty (Underflow). No recent actions recorded.")
			return nil
		}
		m.printError(fmt.Sprintf("Undo failed: %v.", err))
		return nil
	}

	m.logger.InfoContext(ctx, "action undone",
		"actionType", response.ActionType.String(), "parcelID", response.ParcelID)

	fmt.Fprintln(m.out, m.styles.Muted.Render(fmt.Sprintf(
		"\n--- Undoing Action: %s on Parcel ID %d ---", response.ActionType, response.ParcelID)))

	switch response.ActionType {
	case parcel.Add:
		m.printSuccess(fmt.Sprintf(
			"UNDO SUCCESS: Registered Parcel %d removed from active list.", response.ParcelID))
	case parcel.Delete:
		m.printSuccess(fmt.Sprintf(
			"UNDO SUCCESS: Parcel %d restored to active list.", response.ParcelID))
	case parcel.Update:
		m.printSuccess(fmt.Sprintf(
			"UNDO SUCCESS: Parcel %d weight restored.", response.ParcelID))
	}
	return nil
}

func (m *Menu) runSummaryReport(ctx context.Context) error {
	report, err := m.handlers.GetSummaryReport.Handle(ctx, queries.NewGetSummaryReportQuery())
	if err != nil {
		m.printError(fmt.Sprintf("Report failed: %v.", err))
		return nil
	}

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Report.Render("--- PARCEL REGISTRY SUMMARY REPORT ---"))
	fmt.Fprintf(m.out, "Total Parcels Registered: %d\n", report.TotalRegistered)
	fmt.Fprintf(m.out, "Total Parcels Delivered: %d\n", report.TotalDelivered)
	if report.TotalRegistered > 0 {
		fmt.Fprintf(m.out, "Average Parcel Weight: %g kg\n", report.AverageWeight)
	}

	fmt.Fprintln(m.out, "\nParcels Pending by Priority Level:")
	for value := 1; value <= 5; value++ {
		fmt.Fprintf(m.out, "  Priority %d: %d\n", value, report.PendingByPriority[value])
	}

	fmt.Fprintln(m.out, "\nDelivery History (Audit Trail):")
	if len(report.Delivered) == 0 {
		fmt.Fprintln(m.out, m.styles.Muted.Render("  No deliveries completed yet."))
	} else {
		for _, d := range report.Delivered {
			fmt.Fprintf(m.out, "  [DELIVERED] P%d to %s (%s) audit=%s at %s\n",
				d.ParcelID, d.Recipient, d.Priority,
				d.AuditID, d.DeliveredAt.Format("2006-01-02 15:04:05"))
		}
	}
	fmt.Fprintln(m.out, m.styles.Report.Render("--------------------------------------"))
	return nil
}

// readLine reads one input line. Returns io.EOF once input is exhausted.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, m.styles.Prompt.Render(prompt))

	line, err := m.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// Last line without trailing newline still counts.
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (m *Menu) readString(prompt string) (string, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", errMalformedInput
	}
	return line, nil
}

func (m *Menu) readInt(prompt string) (int, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, errMalformedInput
	}
	return value, nil
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, errMalformedInput
	}
	return value, nil
}

func (m *Menu) printSuccess(text string) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Success.Render(text))
}

func (m *Menu) printError(text string) {
	fmt.Fprintln(m.out, m.styles.Error.Render(text))
}
