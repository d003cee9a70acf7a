package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

// Handlers maps HTTP routes onto use cases. Every failure is scoped to one
// request: the error is written into the envelope, never left to crash the
// server.
type Handlers struct {
	listAccounts   *usecase.ListAccounts
	setActive      *usecase.SetActiveAccount
	generate       *usecase.GenerateAccount
	deleteAccount  *usecase.DeleteAccount
	setNetwork     *usecase.SetNetwork
	listNetworks   *usecase.ListNetworks
	listTemplates  *usecase.ListTemplates
	getTemplate    *usecase.GetTemplate
	addTemplate    *usecase.AddTemplate
	removeTemplate *usecase.RemoveTemplate
	deploy         *usecase.DeployTemplate
	interact       *usecase.InteractContract
	listContracts  *usecase.ListContracts
	session        *usecase.Session
	log            *slog.Logger
}

// NewHandlers creates the HTTP handler set.
func NewHandlers(
	listAccounts *usecase.ListAccounts,
	setActive *usecase.SetActiveAccount,
	generate *usecase.GenerateAccount,
	deleteAccount *usecase.DeleteAccount,
	setNetwork *usecase.SetNetwork,
	listNetworks *usecase.ListNetworks,
	listTemplates *usecase.ListTemplates,
	getTemplate *usecase.GetTemplate,
	addTemplate *usecase.AddTemplate,
	removeTemplate *usecase.RemoveTemplate,
	deploy *usecase.DeployTemplate,
	interact *usecase.InteractContract,
	listContracts *usecase.ListContracts,
	session *usecase.Session,
	log *slog.Logger,
) *Handlers {
	return &Handlers{
		listAccounts:   listAccounts,
		setActive:      setActive,
		generate:       generate,
		deleteAccount:  deleteAccount,
		setNetwork:     setNetwork,
		listNetworks:   listNetworks,
		listTemplates:  listTemplates,
		getTemplate:    getTemplate,
		addTemplate:    addTemplate,
		removeTemplate: removeTemplate,
		deploy:         deploy,
		interact:       interact,
		listContracts:  listContracts,
		session:        session,
		log:            log.With("component", "Handlers"),
	}
}

// Register wires all routes into the mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)

	mux.HandleFunc("GET /accounts/{$}", h.handleListAccounts)
	mux.HandleFunc("GET /accounts/active", h.handleActiveAccount)
	mux.HandleFunc("POST /accounts/set_active", h.handleSetActiveAccount)
	mux.HandleFunc("GET /accounts/generate", h.handleGenerateAccount)
	mux.HandleFunc("DELETE /accounts/delete", h.handleDeleteAccount)

	mux.HandleFunc("GET /network/{$}", h.handleListNetworks)
	mux.HandleFunc("GET /network/active", h.handleActiveNetwork)
	mux.HandleFunc("GET /network/set", h.handleSetNetwork)

	mux.HandleFunc("GET /templates/{$}", h.handleListTemplates)
	mux.HandleFunc("GET /templates/code", h.handleGetTemplate)
	mux.HandleFunc("POST /templates/add", h.handleAddTemplate)
	mux.HandleFunc("DELETE /templates/delete", h.handleRemoveTemplate)

	mux.HandleFunc("POST /deploy/template", h.handleDeployTemplate)

	mux.HandleFunc("GET /contracts/{$}", h.handleListContracts)
	mux.HandleFunc("POST /contracts/interact", h.handleInteractContract)
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, nil)
}

func (h *Handlers) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.listAccounts.Run(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"accounts": accounts})
}

func (h *Handlers) handleActiveAccount(w http.ResponseWriter, r *http.Request) {
	account, ok := h.session.ActiveAccount()
	if !ok {
		writeSuccess(w, envelope{"active": false})
		return
	}
	writeSuccess(w, envelope{"active": true, "account": account.Info()})
}

func (h *Handlers) handleSetActiveAccount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	account, err := h.setActive.Run(r.Context(), q.Get("account_name"), q.Get("account_pass"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{
		"active":          true,
		"account_name":    account.Name,
		"account_address": account.Address.Hex(),
	})
}

func (h *Handlers) handleGenerateAccount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.generate.Run(r.Context(), q.Get("account_name"), q.Get("account_pass"), q.Get("private_key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{
		"account_address":     result.Address,
		"account_private_key": result.PrivateKeyHex,
	})
}

func (h *Handlers) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("account_name")
	if err := h.deleteAccount.Run(r.Context(), name, q.Get("account_pass")); err != nil {
		// The one path that uses an HTTP error code.
		if errors.Is(err, domain.ErrAccountNotFound) {
			writeJSON(w, http.StatusNotFound, envelope{
				"status":  "error",
				"message": fmt.Sprintf("no account found locally with name %q", name),
			})
			return
		}
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"account_name": name})
}

func (h *Handlers) handleListNetworks(w http.ResponseWriter, r *http.Request) {
	networks, err := h.listNetworks.Run(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"networks": networks})
}

func (h *Handlers) handleActiveNetwork(w http.ResponseWriter, r *http.Request) {
	network, ok := h.session.ActiveNetwork()
	if !ok {
		writeError(w, domain.ErrNotConnected)
		return
	}
	writeSuccess(w, envelope{"network": network.Name, "chain_id": network.ChainID})
}

func (h *Handlers) handleSetNetwork(w http.ResponseWriter, r *http.Request) {
	network, err := h.setNetwork.Run(r.Context(), r.URL.Query().Get("network_name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"network": network.Name, "chain_id": network.ChainID})
}

func (h *Handlers) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.listTemplates.Run(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"templates": templates})
}

func (h *Handlers) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.getTemplate.Run(r.Context(), r.URL.Query().Get("template_name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{
		"template_name": template.Name,
		"template_code": template.Source,
	})
}

func (h *Handlers) handleAddTemplate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("template_name")
	source, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, fmt.Errorf("failed to read template body: %w", err))
		return
	}
	if err := h.addTemplate.Run(r.Context(), name, string(source)); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"template_name": name})
}

func (h *Handlers) handleRemoveTemplate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("template_name")
	if err := h.removeTemplate.Run(r.Context(), name); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"template_name": name})
}

func (h *Handlers) handleDeployTemplate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := map[string]string{}
	if err := decodeBody(r, &params); err != nil {
		writeError(w, fmt.Errorf("invalid template_params body: %w", err))
		return
	}

	publishSource, err := boolParam(q.Get("publish_source"), true)
	if err != nil {
		writeError(w, fmt.Errorf("publish_source: %w", err))
		return
	}
	strictRender, err := boolParam(q.Get("render_check"), false)
	if err != nil {
		writeError(w, fmt.Errorf("render_check: %w", err))
		return
	}

	result, err := h.deploy.Run(r.Context(), usecase.DeployTemplateParams{
		TemplateName:  q.Get("template_name"),
		ContractName:  q.Get("contract_name"),
		Params:        params,
		PublishSource: publishSource,
		StrictRender:  strictRender,
	})
	if err != nil {
		h.log.Warn("deployment failed", "template", q.Get("template_name"), "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"data": result})
}

func (h *Handlers) handleListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.listContracts.Run(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{"contracts": contracts})
}

func (h *Handlers) handleInteractContract(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var args []any
	if err := decodeBody(r, &args); err != nil {
		writeError(w, fmt.Errorf("invalid method_args body: %w", err))
		return
	}

	result, err := h.interact.Run(r.Context(), usecase.InteractParams{
		ContractName:    q.Get("contract_name"),
		ContractAddress: q.Get("contract_address"),
		Method:          q.Get("contract_method"),
		Args:            args,
	})
	if err != nil {
		h.log.Warn("interaction failed", "contract", q.Get("contract_name"), "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, envelope{
		"tx_hash":   result.TxHash,
		"tx_status": result.TxStatus,
	})
}

// decodeBody decodes a JSON request body; an empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func boolParam(raw string, fallback bool) (bool, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("invalid boolean %q", raw)
	}
	return v, nil
}
