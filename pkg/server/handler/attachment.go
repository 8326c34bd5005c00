/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/server/auth"
	"github.com/aimall-cloud/commerce/pkg/server/store"
	"github.com/aimall-cloud/commerce/pkg/server/util"
)

// maxAttachmentSize caps declared attachment sizes at 100MiB.
const maxAttachmentSize = 100 << 20

var allowedAttachmentExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
	".txt":  true,
	".zip":  true,
}

func (h *Handler) CreateAttachment(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.Require(w, r)
	if !ok {
		return
	}

	request := &openapi.AttachmentWrite{}

	if !h.bind(w, r, request) {
		return
	}

	extension := strings.ToLower(filepath.Ext(request.Filename))

	if !allowedAttachmentExtensions[extension] {
		util.WriteError(w, http.StatusBadRequest, "bad request", fmt.Sprintf("file extension %q is not allowed", extension))
		return
	}

	if request.Size > maxAttachmentSize {
		util.WriteError(w, http.StatusBadRequest, "bad request", "attachment exceeds the maximum allowed size")
		return
	}

	attachment := store.Attachment{
		ID:          uuid.New(),
		OwnerID:     actor.ID,
		Filename:    request.Filename,
		ContentType: request.ContentType,
		Size:        request.Size,
		UploadedAt:  time.Now().UTC(),
	}

	h.store.InsertAttachment(attachment)

	util.WriteJSONResponse(w, http.StatusCreated, convertAttachment(attachment))
}

func (h *Handler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.Require(w, r)
	if !ok {
		return
	}

	attachmentID, ok := pathID(w, r, "attachmentID")
	if !ok {
		return
	}

	attachment, err := h.store.Attachment(attachmentID)
	if err != nil {
		util.WriteError(w, http.StatusNotFound, "not found", "attachment does not exist")
		return
	}

	if attachment.OwnerID != actor.ID && actor.Role != openapi.ActorRoleAdmin {
		util.WriteError(w, http.StatusForbidden, "forbidden", "attachment belongs to another account")
		return
	}

	util.WriteJSONResponse(w, http.StatusOK, convertAttachment(attachment))
}
