package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

var registerFrom string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "File a new FIR",
	Long: `Files a First Information Report with the backend.

Details are read from a YAML file with --from, or asked for one by one.
The report is saved locally first, so a failed delivery can be sent
again later with "register retry".

Example file:
  fullName: Asha Verma
  fatherName: Ramesh Verma
  age: 34
  gender: female
  address: 12 MG Road, Pune
  phone: "+91 98765 43210"
  incidentDate: "2025-01-28"
  incidentTime: "21:15"
  incidentLocation: Deccan Gymkhana
  incidentType: theft
  policeStation: Deccan Police Station, Pune
  description: Mobile phone snatched near the bus stop
  documents: [./receipt.pdf]`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

var registerPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List reports not yet accepted by the backend",
	Args:  cobra.NoArgs,
	RunE:  runRegisterPending,
}

var registerRetryCmd = &cobra.Command{
	Use:   "retry [submission-id]",
	Short: "Send a pending report again",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegisterRetry,
}

func init() {
	registerCmd.Flags().StringVarP(&registerFrom, "from", "f", "", "read the report from a YAML file")
	registerCmd.AddCommand(registerPendingCmd)
	registerCmd.AddCommand(registerRetryCmd)
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if registrationService == nil {
		return errNoRegistration
	}

	var reg domain.Registration
	var err error
	if registerFrom != "" {
		reg, err = readRegistrationFile(registerFrom)
	} else {
		reg, err = promptRegistration(cmd)
	}
	if err != nil {
		return err
	}

	sub, err := registrationService.Submit(commandContext(cmd), reg)
	if err != nil {
		if sub != nil && errors.Is(err, domain.ErrBackendUnavailable) {
			cmd.Printf("Saved as %s but not delivered: %v\n", sub.ID, err)
			cmd.Println(`Run "nyaya register retry ` + sub.ID + `" once the service is reachable.`)
			return nil
		}
		return err
	}

	cmd.Printf("FIR submitted successfully (reference %s).\n", sub.ID)
	if reg.Email != "" {
		cmd.Printf("Confirmation will be sent to %s.\n", reg.Email)
	}
	return nil
}

func runRegisterPending(cmd *cobra.Command, _ []string) error {
	if registrationService == nil {
		return errNoRegistration
	}

	subs, err := registrationService.Pending(commandContext(cmd))
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		cmd.Println("No pending reports.")
		return nil
	}

	for _, sub := range subs {
		cmd.Printf("%s  %-7s  attempts=%d  %s  %s\n",
			sub.ID, sub.Status, sub.Attempts, sub.CreatedAt.Format("2006-01-02 15:04"), sub.Registration.FullName)
		if sub.LastError != "" {
			cmd.Printf("    last error: %s\n", sub.LastError)
		}
	}
	return nil
}

func runRegisterRetry(cmd *cobra.Command, args []string) error {
	if registrationService == nil {
		return errNoRegistration
	}

	sub, err := registrationService.Retry(commandContext(cmd), args[0])
	if err != nil {
		return err
	}
	cmd.Printf("FIR submitted successfully (reference %s).\n", sub.ID)
	return nil
}

func readRegistrationFile(path string) (domain.Registration, error) {
	var reg domain.Registration
	data, err := os.ReadFile(path)
	if err != nil {
		return reg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return reg, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidInput, path, err)
	}
	return reg, nil
}

// promptRegistration asks for each field on the command's input.
func promptRegistration(cmd *cobra.Command) (domain.Registration, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	var reg domain.Registration

	ask := func(label string, dst *string) error {
		cmd.Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if errors.Is(err, io.EOF) && line == "" {
			return fmt.Errorf("%w: input ended before %s", domain.ErrInvalidInput, label)
		}
		*dst = strings.TrimSpace(line)
		return nil
	}

	var age, voice, docs string
	steps := []struct {
		label string
		dst   *string
	}{
		{"Full name", &reg.FullName},
		{"Father's name", &reg.FatherName},
		{"Age", &age},
		{"Gender (male/female/other)", &reg.Gender},
		{"Address", &reg.Address},
		{"Phone", &reg.Phone},
		{"Email (optional)", &reg.Email},
		{"Incident date (YYYY-MM-DD)", &reg.IncidentDate},
		{"Incident time (HH:MM)", &reg.IncidentTime},
		{"Incident location", &reg.IncidentLocation},
		{"Incident type (" + strings.Join(domain.IncidentTypes(), ", ") + ")", &reg.IncidentType},
		{"Police station", &reg.PoliceStation},
		{"Description", &reg.Description},
		{"Witness name (optional)", &reg.WitnessName},
		{"Witness phone (optional)", &reg.WitnessPhone},
		{"Voice samples, comma separated (optional)", &voice},
		{"Documents, comma separated (optional)", &docs},
	}
	for _, step := range steps {
		if err := ask(step.label, step.dst); err != nil {
			return reg, err
		}
	}

	reg.Age, _ = strconv.Atoi(age)
	reg.VoiceSamples = splitPaths(voice)
	reg.Documents = splitPaths(docs)
	return reg, nil
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
