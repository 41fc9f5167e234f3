package main

func getJavaScript() string {
	return `
        // Global state
        let currentZoom = 1.0;
        let syncLocked = true;
        let applyingRemote = false;
        let pageOffsets = { original: [], changed: [] };

        // Per-direction pending-frame flags: at most one sync POST per
        // animation frame per pane.
        let framePending = { original: false, changed: false };

        pdfjsLib.GlobalWorkerOptions.workerSrc =
            'https://cdn.jsdelivr.net/npm/pdfjs-dist@3.11.174/build/pdf.worker.min.js';

        document.addEventListener('DOMContentLoaded', function() {
            renderDocument('original');
            renderDocument('changed');
            setupScrollSync('original');
            setupScrollSync('changed');
        });

        async function renderDocument(side) {
            const container = document.getElementById(side + '-pages');
            container.innerHTML = '';
            pageOffsets[side] = [];

            try {
                const doc = await pdfjsLib.getDocument('/api/doc/' + side).promise;
                let offset = 0;
                for (let p = 1; p <= doc.numPages; p++) {
                    const page = await doc.getPage(p);
                    const viewport = page.getViewport({ scale: currentZoom });

                    const wrap = document.createElement('div');
                    wrap.className = 'page-wrap';
                    wrap.dataset.page = p - 1;
                    wrap.style.width = viewport.width + 'px';
                    wrap.style.height = viewport.height + 'px';

                    const canvas = document.createElement('canvas');
                    canvas.width = viewport.width;
                    canvas.height = viewport.height;
                    wrap.appendChild(canvas);
                    container.appendChild(wrap);

                    pageOffsets[side].push(offset);
                    offset += viewport.height + 16; // page gap

                    await page.render({ canvasContext: canvas.getContext('2d'), viewport: viewport }).promise;
                }
            } catch (error) {
                console.error('Failed to render ' + side + ' document:', error);
            }
        }

        function setupScrollSync(side) {
            const el = document.getElementById(side + '-scroll');
            el.addEventListener('scroll', function() {
                if (applyingRemote || !syncLocked) return;
                if (framePending[side]) return;
                framePending[side] = true;
                requestAnimationFrame(function() {
                    framePending[side] = false;
                    postSyncEvent(side, {
                        type: 'scroll',
                        left: el.scrollLeft,
                        top: el.scrollTop
                    });
                });
            });
        }

        async function postSyncEvent(side, ev) {
            ev.source = side;
            try {
                const response = await fetch('/api/sync/event', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify(ev)
                });
                const result = await response.json();
                if (result.success) {
                    applyCounterpart(side, result.data);
                }
            } catch (error) {
                console.error('Sync event failed:', error);
            }
        }

        // Apply the server-computed counterpart state to the other pane.
        function applyCounterpart(sourceSide, state) {
            const otherSide = sourceSide === 'original' ? 'changed' : 'original';
            const snap = state[otherSide];
            const el = document.getElementById(otherSide + '-scroll');

            applyingRemote = true;
            el.scrollLeft = snap.scroll_left;
            el.scrollTop = snap.scroll_top;
            renderAnnotations('original', state.original.annotations);
            renderAnnotations('changed', state.changed.annotations);
            requestAnimationFrame(function() { applyingRemote = false; });
        }

        function renderAnnotations(side, annotations) {
            document.querySelectorAll('#' + side + '-pages .annotation').forEach(function(n) { n.remove(); });
            if (!annotations) return;

            const container = document.getElementById(side + '-pages');
            Object.keys(annotations).forEach(function(id) {
                const a = annotations[id];
                const wrap = container.querySelector('.page-wrap[data-page="' + a.page + '"]');
                if (!wrap) return;

                const div = document.createElement('div');
                div.className = 'annotation ' + (a.type === 'rectangle' ? 'border' : 'highlight');
                div.style.left = (a.rect.left * currentZoom) + 'px';
                div.style.top = (a.rect.top * currentZoom) + 'px';
                div.style.width = (a.rect.width * currentZoom) + 'px';
                div.style.height = (a.rect.height * currentZoom) + 'px';
                if (a.type !== 'rectangle') {
                    div.style.background = 'rgb(' + a.color.r + ',' + a.color.g + ',' + a.color.b + ')';
                    div.onclick = function() { selectAnnotation(side, id); };
                }
                wrap.appendChild(div);
            });
        }

        async function runComparison() {
            const btn = document.getElementById('compare-btn');
            btn.disabled = true;
            btn.textContent = 'Comparing...';
            try {
                const response = await fetch('/api/compare', { method: 'POST' });
                const result = await response.json();
                if (result.success) {
                    renderChangeList(result.data, -1);
                    await refreshState();
                } else {
                    alert('Comparison failed: ' + result.message);
                }
            } catch (error) {
                console.error('Comparison failed:', error);
            } finally {
                btn.disabled = false;
                btn.textContent = 'Compare';
            }
        }

        async function refreshState() {
            const response = await fetch('/api/state');
            const result = await response.json();
            if (!result.success) return;
            renderAnnotations('original', result.data.original.annotations);
            renderAnnotations('changed', result.data.changed.annotations);
            if (result.data.changes) {
                renderChangeList(result.data.changes, result.data.selected);
            }
        }

        function renderChangeList(changes, selected) {
            const list = document.getElementById('change-list');
            if (!changes || changes.length === 0) {
                list.innerHTML = '<p class="hint">No changes found.</p>';
                return;
            }

            list.innerHTML = '';
            changes.forEach(function(change) {
                const item = document.createElement('div');
                item.className = 'change-item ' + change.kind + (change.index === selected ? ' selected' : '');

                let snippet = '';
                if (change.delete_text) snippet += '− ' + change.delete_text;
                if (change.delete_text && change.insert_text) snippet += '<br>';
                if (change.insert_text) snippet += '+ ' + change.insert_text;

                const words = change.delete_words + change.insert_words;
                item.innerHTML =
                    '<div class="kind">' + change.kind + '</div>' +
                    '<div class="snippet">' + snippet + '</div>' +
                    '<div class="meta">page ' + (change.page + 1) + ' · ' + words + ' words</div>';
                item.onclick = function() { selectChange(change.index); };
                list.appendChild(item);
            });
        }

        async function selectChange(index) {
            const response = await fetch('/api/select', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ index: index })
            });
            const result = await response.json();
            if (result.success) applySelection(result.data);
        }

        async function selectAnnotation(side, id) {
            const response = await fetch('/api/select/annotation', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ id: id, source: side })
            });
            const result = await response.json();
            if (result.success) applySelection(result.data);
        }

        async function nextChange() {
            const response = await fetch('/api/next', { method: 'POST' });
            const result = await response.json();
            if (result.success) applySelection(result.data);
        }

        async function prevChange() {
            const response = await fetch('/api/prev', { method: 'POST' });
            const result = await response.json();
            if (result.success) applySelection(result.data);
        }

        function applySelection(state) {
            applyingRemote = true;
            ['original', 'changed'].forEach(function(side) {
                const snap = state[side];
                const el = document.getElementById(side + '-scroll');
                el.scrollTo({ top: snap.scroll_top, behavior: 'smooth' });
                renderAnnotations(side, snap.annotations);
            });
            renderChangeList(state.changes, state.selected);
            requestAnimationFrame(function() { applyingRemote = false; });
        }

        async function toggleLock() {
            syncLocked = document.getElementById('lock-toggle').checked;
            await fetch('/api/sync/lock', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ locked: syncLocked })
            });
        }

        async function changeZoom() {
            currentZoom = parseFloat(document.getElementById('zoom-select').value);
            await postSyncEvent('original', { type: 'zoom', zoom: currentZoom });
            await renderDocument('original');
            await renderDocument('changed');
            await refreshState();
        }
    `
}
