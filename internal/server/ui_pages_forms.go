package server

// uiPagesFormsJS wires native form validation and image previews.
const uiPagesFormsJS = `
function initFormValidation() {
  document.querySelectorAll('form.needs-validation').forEach(function (form) {
    form.addEventListener('submit', function (event) {
      if (!form.checkValidity()) {
        event.preventDefault();
        event.stopPropagation();
      }
      form.classList.add('was-validated');
    });
  });
}

function initImagePreviews() {
  document.querySelectorAll('input[type="file"][accept*="image"]').forEach(function (input) {
    var selector = input.dataset.previewTarget || '#imagePreview';
    var preview = document.querySelector(selector);
    if (preview === null) {
      return;
    }
    input.addEventListener('change', function () {
      var file = input.files && input.files[0];
      if (!file) {
        preview.removeAttribute('src');
        preview.classList.remove('has-image');
        return;
      }
      var reader = new FileReader();
      reader.onload = function (event) {
        preview.src = event.target.result;
        preview.classList.add('has-image');
      };
      reader.readAsDataURL(file);
    });
  });
}
`
