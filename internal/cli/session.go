package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/tui"
	"github.com/runoshun/todo/internal/usecase"
)

// Menu actions.
const (
	actionAddTask      = "add-task"
	actionAddNote      = "add-note"
	actionComplete     = "complete"
	actionDelete       = "delete"
	actionView         = "view"
	actionSortPriority = "sort-priority"
	actionSortDue      = "sort-due"
	actionUndo         = "undo"
	actionExit         = "exit"
)

var menuChoices = []domain.Choice{
	{Label: "Add Task", Value: actionAddTask},
	{Label: "Add Note", Value: actionAddNote},
	{Label: "Mark Completed", Value: actionComplete},
	{Label: "Delete Item", Value: actionDelete},
	{Label: "View Items", Value: actionView},
	{Label: "Sort Items by Priority", Value: actionSortPriority},
	{Label: "Sort Items by Due Date", Value: actionSortDue},
	{Label: "Undo", Value: actionUndo},
	{Label: "Exit", Value: actionExit},
}

var filterChoices = []domain.Choice{
	{Label: "All", Value: string(domain.FilterAll)},
	{Label: "Completed", Value: string(domain.FilterCompleted)},
	{Label: "Pending", Value: string(domain.FilterPending)},
}

// Prompt titles.
const (
	promptUsername    = "Enter your username:"
	promptPassword    = "Enter your password:"
	promptMenu        = "Menu"
	promptDescription = "Enter task description:"
	promptNoteDesc    = "Enter note description:"
	promptNoteContent = "Enter note content:"
	promptDueDate     = "Enter due date (" + domain.TimestampHint + ", press Enter if none):"
	promptTags        = "Enter tags (comma-separated, press Enter if none):"
	promptPriority    = "Enter priority (0 for no priority):"
	promptReminder    = "Enter reminder (" + domain.TimestampHint + ", press Enter if none):"
	promptComplete    = "Enter task description to mark as completed:"
	promptDelete      = "Enter task description to delete:"
	promptFilter      = "Enter filter type (all/completed/pending):"
)

// Messages printed by the session.
const (
	msgLoginOK         = "Login successful!"
	msgLoginFailed     = "Invalid username or password. Please try again."
	msgInvalidDate     = "Invalid date format. Please enter a valid date."
	msgInvalidPriority = "Invalid priority. Please enter a whole number."
	msgReminderLate    = "The reminder should not be later than the due date. Please enter a valid reminder date."
	msgEmptyDesc       = "Description cannot be empty. Please try again."
	msgNothingToUndo   = "Nothing to undo."
	msgFarewell        = "The best preparation for tomorrow is doing your best today\nHave a nice day :)"
)

// browseFunc shows items in the interactive table, allowing it to be mocked in tests.
var browseFunc = tui.Browse

// session runs the login and the interactive menu loop.
// Fields are ordered to minimize memory padding.
type session struct {
	c           *app.Container
	prompter    domain.Prompter
	in          io.Reader
	out         io.Writer
	interactive bool // Show listings in the table browser
}

func newSession(c *app.Container, prompter domain.Prompter, in io.Reader, out io.Writer) *session {
	return &session{
		c:        c,
		prompter: prompter,
		in:       in,
		out:      out,
	}
}

// run logs in, imports the seed file if given, then serves the menu until
// the user exits. Errors inside a menu action are reported and logged; they
// never end the session.
func (s *session) run(ctx context.Context, seedPath string) error {
	if err := s.login(ctx); err != nil {
		if errors.Is(err, domain.ErrAborted) {
			return nil
		}
		return err
	}

	if seedPath != "" {
		out, err := s.c.ImportItemsUseCase(s.c.SeedFile(seedPath)).Execute(ctx, usecase.ImportItemsInput{})
		if err != nil {
			return err
		}
		s.printf("Loaded %d items from %s\n", len(out.Items), seedPath)
	}

	for {
		s.println()
		action, err := s.prompter.Select(ctx, promptMenu, menuChoices)
		if errors.Is(err, domain.ErrAborted) || (err == nil && action == actionExit) {
			s.println(msgFarewell)
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.dispatch(ctx, action); err != nil {
			if errors.Is(err, domain.ErrAborted) {
				continue
			}
			s.logError(err)
			s.printf("Error: %v\n", err)
		}
	}
}

// login prompts until the credentials verify or max_attempts is reached.
func (s *session) login(ctx context.Context) error {
	maxAttempts := s.c.AppConfig.Auth.MaxAttempts
	uc := s.c.LoginUseCase()

	for attempt := 1; ; attempt++ {
		username, err := s.prompter.Input(ctx, promptUsername)
		if err != nil {
			return err
		}
		password, err := s.prompter.Password(ctx, promptPassword)
		if err != nil {
			return err
		}

		_, err = uc.Execute(ctx, usecase.LoginInput{Username: username, Password: password})
		if err == nil {
			s.println(msgLoginOK)
			return nil
		}
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return err
		}

		s.println(msgLoginFailed)
		if maxAttempts > 0 && attempt >= maxAttempts {
			return domain.ErrTooManyAttempts
		}
	}
}

func (s *session) dispatch(ctx context.Context, action string) error {
	switch action {
	case actionAddTask:
		return s.addTask(ctx)
	case actionAddNote:
		return s.addNote(ctx)
	case actionComplete:
		return s.complete(ctx)
	case actionDelete:
		return s.delete(ctx)
	case actionView:
		return s.view(ctx)
	case actionSortPriority:
		return s.sorted(ctx, domain.SortPriority, "Items by priority")
	case actionSortDue:
		return s.sorted(ctx, domain.SortDueDate, "Items by due date")
	case actionUndo:
		return s.undo(ctx)
	default:
		s.println("Invalid choice. Please try again.")
		return nil
	}
}

func (s *session) addTask(ctx context.Context) error {
	description, err := s.askDescription(ctx, promptDescription)
	if err != nil {
		return err
	}
	due, err := s.askTimestamp(ctx, promptDueDate, "due date")
	if err != nil {
		return err
	}
	tags, err := s.prompter.Input(ctx, promptTags)
	if err != nil {
		return err
	}
	priority, err := s.askPriority(ctx)
	if err != nil {
		return err
	}
	reminder, err := s.askReminder(ctx, due)
	if err != nil {
		return err
	}

	out, err := s.c.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{
		Description: description,
		DueDate:     due,
		Tags:        tags,
		Priority:    priority,
		Reminder:    reminder,
	})
	if err != nil {
		return err
	}
	s.printf("Added: %s\n", out.Task.Display())
	return nil
}

func (s *session) addNote(ctx context.Context) error {
	description, err := s.askDescription(ctx, promptNoteDesc)
	if err != nil {
		return err
	}
	content, err := s.prompter.Input(ctx, promptNoteContent)
	if err != nil {
		return err
	}

	out, err := s.c.AddNoteUseCase().Execute(ctx, usecase.AddNoteInput{
		Description: description,
		Content:     content,
	})
	if err != nil {
		return err
	}
	s.printf("Added: %s\n", out.Note.Display())
	return nil
}

func (s *session) complete(ctx context.Context) error {
	description, err := s.prompter.Input(ctx, promptComplete)
	if err != nil {
		return err
	}
	out, err := s.c.CompleteItemUseCase().Execute(ctx, usecase.CompleteItemInput{Description: description})
	if err != nil {
		return err
	}
	if !out.Found {
		s.printf("No item found with description %q.\n", description)
	}
	return nil
}

func (s *session) delete(ctx context.Context) error {
	description, err := s.prompter.Input(ctx, promptDelete)
	if err != nil {
		return err
	}
	out, err := s.c.DeleteItemUseCase().Execute(ctx, usecase.DeleteItemInput{Description: description})
	if err != nil {
		return err
	}
	if !out.Found {
		s.printf("No item found with description %q.\n", description)
	}
	return nil
}

func (s *session) view(ctx context.Context) error {
	filter, err := s.prompter.Select(ctx, promptFilter, filterChoices)
	if err != nil {
		return err
	}
	out, err := s.c.ListItemsUseCase().Execute(ctx, usecase.ListItemsInput{Filter: filter})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		s.println(out.Filter.EmptyMessage())
		return nil
	}
	return s.show(viewTitle(out.Filter), out.Items, true)
}

func (s *session) sorted(ctx context.Context, key domain.SortKey, title string) error {
	out, err := s.c.ListItemsUseCase().Execute(ctx, usecase.ListItemsInput{Sort: string(key)})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		s.println(domain.FilterAll.EmptyMessage())
		return nil
	}
	return s.show(title, out.Items, false)
}

func (s *session) undo(ctx context.Context) error {
	out, err := s.c.UndoUseCase().Execute(ctx, usecase.UndoInput{})
	if err != nil {
		return err
	}
	if !out.Undone {
		s.println(msgNothingToUndo)
	}
	if out.Remaining == 0 {
		s.println(domain.FilterAll.EmptyMessage())
	}
	return nil
}

// show prints items as rows, or opens the table browser in interactive mode.
func (s *session) show(title string, items []domain.Item, header bool) error {
	if s.interactive {
		return browseFunc(title, items, s.in, s.out)
	}
	writeItems(s.out, items, header)
	return nil
}

// askDescription repeats the prompt until the answer is not blank.
func (s *session) askDescription(ctx context.Context, title string) (string, error) {
	for {
		text, err := s.prompter.Input(ctx, title)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
		s.println(msgEmptyDesc)
	}
}

// askTimestamp repeats the prompt until the answer is blank or parses.
func (s *session) askTimestamp(ctx context.Context, title, field string) (string, error) {
	for {
		text, err := s.prompter.Input(ctx, title)
		if err != nil {
			return "", err
		}
		if _, err := domain.ParseTimestamp(field, text); err != nil {
			s.logWarn(err)
			s.println(msgInvalidDate)
			continue
		}
		return text, nil
	}
}

// askPriority repeats the prompt until the answer is blank or an integer.
func (s *session) askPriority(ctx context.Context) (int, error) {
	for {
		text, err := s.prompter.Input(ctx, promptPriority)
		if err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, nil
		}
		p, err := strconv.Atoi(text)
		if err == nil {
			return p, nil
		}
		s.println(msgInvalidPriority)
	}
}

// askReminder repeats the prompt until the reminder is blank, or parses and
// does not fall after due.
func (s *session) askReminder(ctx context.Context, due string) (string, error) {
	dueAt, _ := domain.ParseTimestamp("due date", due)
	for {
		text, err := s.askTimestamp(ctx, promptReminder, "reminder")
		if err != nil {
			return "", err
		}
		reminderAt, _ := domain.ParseTimestamp("reminder", text)
		if reminderAt != nil && dueAt != nil && reminderAt.After(*dueAt) {
			s.println(msgReminderLate)
			continue
		}
		return text, nil
	}
}

func (s *session) logError(err error) {
	if s.c.Logger != nil {
		s.c.Logger.Error("session", fmt.Sprintf("An error occurred: %v", err))
	}
}

func (s *session) logWarn(err error) {
	if s.c.Logger != nil {
		s.c.Logger.Warn("session", err.Error())
	}
}

func (s *session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func viewTitle(f domain.ViewFilter) string {
	switch f {
	case domain.FilterCompleted:
		return "Completed items"
	case domain.FilterPending:
		return "Pending items"
	default:
		return "All items"
	}
}
